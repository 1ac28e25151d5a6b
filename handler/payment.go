package handler

import (
	"errors"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/gateway"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func paymentTarget(c *fiber.Ctx) (model.PaymentTarget, error) {
	input, ok := c.Locals("inputPaymentTarget").(model.PaymentTarget)
	if !ok {
		return input, errors.New("inputPaymentTarget missing")
	}
	return input, nil
}

func GetQuote(c *fiber.Ctx) error {
	target, err := paymentTarget(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	quote, err := helper.QuotePayment(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c).ID, target.BookingID, target.PaymentType)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, quote)
}

func SimulatedPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSimulatedPayment").(model.SimulatedPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputSimulatedPayment missing"))
	}

	payment, err := helper.SimulatedPayment(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c).ID, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

func CreateStripeIntent(c *fiber.Ctx) error {
	target, err := paymentTarget(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	result, err := helper.CreateStripeIntent(c.UserContext(), database.DB, session.Default, gateway.Default, helper.CurrentUser(c).ID, &target)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func ConfirmStripePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputConfirmIntent").(model.ConfirmIntentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputConfirmIntent missing"))
	}

	payment, err := helper.ConfirmStripePayment(c.UserContext(), database.DB, session.Default, gateway.Default, helper.CurrentUser(c).ID, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

// StripeWebhook acknowledges every correctly signed event; only intent outcomes change state.
func StripeWebhook(c *fiber.Ctx) error {
	if gateway.Default == nil {
		return respondError(c, helper.ErrGatewayUnavailable)
	}
	event, err := gateway.Default.ParseWebhook(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature", err)
	}

	if err := helper.HandleStripeEvent(c.UserContext(), database.DB, session.Default, event); err != nil {
		log.Error().Err(err).Str("event", event.ID).Str("type", event.Type).Msg("stripe webhook")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{"received": true})
}

func CreateCheckout(c *fiber.Ctx) error {
	target, err := paymentTarget(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	cs, err := helper.CreateCheckout(c.UserContext(), database.DB, session.Default, gateway.Default, helper.CurrentUser(c), &target)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"sessionId": cs.ID, "url": cs.URL})
}

func CheckoutSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("session_id is required"), "session_id")
	}

	payment, err := helper.CompleteCheckout(c.UserContext(), database.DB, session.Default, gateway.Default, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func CheckoutCancel(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("session_id is required"), "session_id")
	}

	payment, err := helper.CancelCheckout(database.DB, sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

func GetPaymentHistory(c *fiber.Ctx) error {
	var payments []model.Payment
	err := database.DB.Joins("Booking").
		Where(`"Booking".user_id = ?`, helper.CurrentUser(c).ID).
		Order("payments.date DESC, payments.id DESC").
		Find(&payments).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

// GetReceipt is available to the booking owner and to admins.
func GetReceipt(c *fiber.Ctx) error {
	receipt, owner, err := helper.BuildReceipt(database.DB, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}
	user := helper.CurrentUser(c)
	if user.Role != constants.ROLE_ADMIN && (owner == nil || owner.ID != user.ID) {
		return respondError(c, helper.ErrPaymentNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, receipt)
}

func GetRecentPayments(c *fiber.Ctx) error {
	count := c.QueryInt("count", 10)
	if count <= 0 || count > 100 {
		count = 10
	}

	var payments []model.Payment
	if err := database.DB.Preload("Booking").Preload("Booking.User").
		Order("date DESC, id DESC").Limit(count).Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

// StripeConfig exposes the publishable key to the client.
func StripeConfig(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publishableKey": config.App.Stripe.PublishableKey,
		"currency":       config.App.Stripe.Currency,
	})
}
