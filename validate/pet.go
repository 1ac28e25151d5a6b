package validate

import (
	"strings"

	"pawfect_grooming/model"

	"github.com/gofiber/fiber/v2"
)

// Pet validates the body shared by create and update.
func Pet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PetInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		input.Name = strings.TrimSpace(input.Name)
		input.PetType = strings.TrimSpace(input.PetType)

		c.Locals("inputPet", input)
		return c.Next()
	}
}

func PetLookup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.PetLookupFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}

		c.Locals("petLookup", filter)
		return c.Next()
	}
}
