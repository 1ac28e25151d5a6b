package validate

import (
	"pawfect_grooming/model"

	"github.com/gofiber/fiber/v2"
)

func Holiday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.HolidayInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputHoliday", input)
		return c.Next()
	}
}

func HolidayFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.HolidayFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}

		c.Locals("holidayFilter", filter)
		return c.Next()
	}
}
