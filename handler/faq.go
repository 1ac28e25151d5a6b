package handler

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func AnswerQuestion(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAsk").(model.AskInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputAsk missing"))
	}

	answer, err := helper.AnswerQuestion(database.DB, input.Question)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"answer": answer})
}
