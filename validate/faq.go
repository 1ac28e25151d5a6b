package validate

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func FAQ() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FAQInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputFAQ", input)
		return c.Next()
	}
}

func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AskInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.FAQ_EMPTY_QUESTION, err)
		}
		if strings.TrimSpace(input.Question) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.FAQ_EMPTY_QUESTION, errors.New("question empty"), "question")
		}

		c.Locals("inputAsk", input)
		return c.Next()
	}
}
