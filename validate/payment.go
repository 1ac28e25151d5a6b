package validate

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func SimulatedPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SimulatedPaymentInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		method, ok := utils.CanonicalValue(input.PaymentMethod, constants.SIMULATED_METHOD)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Payment method must be Credit Card, FPX or E-Wallet", errors.New("paymentMethod invalid"), "paymentMethod")
		}
		input.PaymentMethod = method

		c.Locals("inputSimulatedPayment", input)
		return c.Next()
	}
}

// PaymentTarget reads {bookingId, paymentType} from the body, or from the query string on GET.
func PaymentTarget() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PaymentTarget
		parse := parseBody
		if c.Method() == fiber.MethodGet {
			parse = parseQuery
		}
		if ok, err := parse(c, &input); !ok {
			return err
		}

		c.Locals("inputPaymentTarget", input)
		return c.Next()
	}
}

func ConfirmIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmIntentInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputConfirmIntent", input)
		return c.Next()
	}
}
