package validate

import (
	"pawfect_grooming/model"

	"github.com/gofiber/fiber/v2"
)

func UserFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.UserFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}

		c.Locals("userFilter", filter)
		return c.Next()
	}
}
