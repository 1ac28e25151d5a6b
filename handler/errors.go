package handler

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/helper"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type errorStatus struct {
	err      error
	status   int
	keyError string
}

var errorStatuses = []errorStatus{
	{helper.ErrLoginPaused, fiber.StatusTooManyRequests, ""},
	{helper.ErrBadCredentials, fiber.StatusUnauthorized, ""},
	{helper.ErrInvalidTempToken, fiber.StatusUnauthorized, ""},
	{helper.ErrUserInactive, fiber.StatusForbidden, ""},
	{helper.ErrEmailNotVerified, fiber.StatusForbidden, ""},

	{helper.ErrUserNotFound, fiber.StatusNotFound, ""},
	{helper.ErrPetNotFound, fiber.StatusNotFound, ""},
	{helper.ErrServiceNotFound, fiber.StatusNotFound, ""},
	{helper.ErrBookingNotFound, fiber.StatusNotFound, ""},
	{helper.ErrVoucherNotFound, fiber.StatusNotFound, "code"},
	{helper.ErrPaymentNotFound, fiber.StatusNotFound, ""},
	{helper.ErrHolidayNotFound, fiber.StatusNotFound, ""},
	{gorm.ErrRecordNotFound, fiber.StatusNotFound, ""},

	{helper.ErrEmailTaken, fiber.StatusConflict, "email"},
	{helper.ErrHasActiveBookings, fiber.StatusConflict, ""},
	{helper.ErrSlotTaken, fiber.StatusConflict, "time"},
	{helper.ErrDuplicateBooking, fiber.StatusConflict, ""},
	{helper.ErrVoucherPending, fiber.StatusConflict, "code"},

	{helper.ErrGatewayUnavailable, fiber.StatusServiceUnavailable, ""},
	{helper.ErrFeedDisabled, fiber.StatusServiceUnavailable, ""},
	{helper.ErrVoucherCodeExhausted, fiber.StatusInternalServerError, ""},

	{helper.ErrInvalidAdminKey, fiber.StatusBadRequest, "adminKey"},
	{helper.ErrInvalidToken, fiber.StatusBadRequest, "token"},
	{helper.ErrWeakPassword, fiber.StatusBadRequest, "password"},
	{helper.ErrPasswordMismatch, fiber.StatusBadRequest, "confirmPassword"},
	{helper.ErrWrongPassword, fiber.StatusBadRequest, "currentPassword"},
	{helper.ErrInvalidPhone, fiber.StatusBadRequest, "phoneNumber"},
	{helper.ErrChooseOneItem, fiber.StatusBadRequest, "serviceId"},
	{helper.ErrInvalidDate, fiber.StatusBadRequest, "date"},
	{helper.ErrInvalidTime, fiber.StatusBadRequest, "time"},
	{helper.ErrUnknownSlot, fiber.StatusBadRequest, "time"},
	{helper.ErrPastSlot, fiber.StatusBadRequest, "date"},
	{helper.ErrTooSoon, fiber.StatusBadRequest, "time"},
	{helper.ErrSalonClosed, fiber.StatusBadRequest, "date"},
	{helper.ErrHolidayClosed, fiber.StatusBadRequest, "date"},
	{helper.ErrVoucherCodeInvalid, fiber.StatusBadRequest, "code"},
	{helper.ErrVoucherFullPaymentOnly, fiber.StatusBadRequest, "paymentType"},
	{helper.ErrInvalidPaymentType, fiber.StatusBadRequest, "paymentType"},
	{helper.ErrInvalidPaymentMethod, fiber.StatusBadRequest, "paymentMethod"},
	{helper.ErrInvalidCard, fiber.StatusBadRequest, "cardNumber"},
	{helper.ErrInvalidExpiry, fiber.StatusBadRequest, "expiryDate"},
	{helper.ErrInvalidCVV, fiber.StatusBadRequest, "cvv"},
	{helper.ErrBankRequired, fiber.StatusBadRequest, "bank"},
	{helper.ErrInvalidWallet, fiber.StatusBadRequest, "walletId"},
}

// respondError writes the status that matches a helper error. Unknown errors are logged and
// answered with 500; everything else in helper's error set is a 400.
func respondError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}
		if e.keyError != "" {
			return utils.ErrorResponseHaveKey(c, e.status, err.Error(), err, e.keyError)
		}
		return utils.ErrorResponse(c, e.status, err.Error(), err)
	}
	if helper.IsClientError(err) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
