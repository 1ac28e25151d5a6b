package validate

import (
	"pawfect_grooming/model"

	"github.com/gofiber/fiber/v2"
)

func ApplyVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ApplyVoucherInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputApplyVoucher", input)
		return c.Next()
	}
}

func RemoveVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RemoveVoucherInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputRemoveVoucher", input)
		return c.Next()
	}
}
