package validate

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func CatalogItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CatalogInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		petType, ok := utils.CanonicalValue(input.PetType, constants.CATALOG_PET_TYPE)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Pet type must be Dog, Cat or Cat & Dog", errors.New("petType invalid"), "petType")
		}
		input.PetType = petType
		input.Name = strings.TrimSpace(input.Name)
		input.Price = utils.Money(input.Price)

		c.Locals("inputCatalog", input)
		return c.Next()
	}
}

func CatalogFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.CatalogFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}
		if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("minPrice greater than maxPrice"), "minPrice")
		}

		c.Locals("catalogFilter", filter)
		return c.Next()
	}
}
