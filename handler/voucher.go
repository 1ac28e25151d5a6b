package handler

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func GetWallet(c *fiber.Ctx) error {
	wallet, err := helper.Wallet(database.DB, helper.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, wallet)
}

func RedeemVoucher(c *fiber.Ctx) error {
	voucher, err := helper.RedeemVoucher(database.DB, helper.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, voucher)
}

func ApplyVoucher(c *fiber.Ctx) error {
	input, ok := c.Locals("inputApplyVoucher").(model.ApplyVoucherInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputApplyVoucher missing"))
	}

	reservation, err := helper.ApplyVoucher(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c).ID, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func RemoveVoucher(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRemoveVoucher").(model.RemoveVoucherInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputRemoveVoucher missing"))
	}

	if err := helper.RemoveVoucher(c.UserContext(), session.Default, helper.CurrentUser(c).ID, input.BookingID); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Voucher removed")
}
