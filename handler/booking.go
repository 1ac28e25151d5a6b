package handler

import (
	"errors"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

var bookingSort = map[string]string{
	"date":   "date",
	"status": "status",
}

func ScheduleDraft(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSchedule").(model.ScheduleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputSchedule missing"))
	}

	draft, err := helper.StartDraft(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c).ID, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func currentDraft(c *fiber.Ctx) (*model.BookingDraft, error) {
	draft, err := session.Default.GetDraft(c.UserContext(), helper.CurrentUser(c).ID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, helper.ErrNoDraft
	}
	return draft, nil
}

func GetDraft(c *fiber.Ctx) error {
	draft, err := currentDraft(c)
	if errors.Is(err, helper.ErrNoDraft) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func DiscardDraft(c *fiber.Ctx) error {
	if err := session.Default.ClearDraft(c.UserContext(), helper.CurrentUser(c).ID); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Booking discarded")
}

// GetDraftPets lists the member's pets that can take the drafted service.
func GetDraftPets(c *fiber.Ctx) error {
	draft, err := currentDraft(c)
	if err != nil {
		return respondError(c, err)
	}

	pets, err := helper.PetsForType(database.DB, helper.CurrentUser(c).ID, draft.PetType)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pets)
}

func SelectDraftPet(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSelectPet").(model.SelectPetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputSelectPet missing"))
	}

	draft, err := helper.SelectDraftPet(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c), input.PetID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func ConfirmDraft(c *fiber.Ctx) error {
	booking, err := helper.ConfirmDraft(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, helper.ErrInvalidDate, "date")
	}

	slots, err := helper.SlotsForDate(database.DB, date)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, slots)
}

// GetBookings lists the member's active and cancelled bookings.
func GetBookings(c *fiber.Ctx) error {
	filter, ok := c.Locals("bookingFilter").(model.BookingFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("bookingFilter missing"))
	}
	if filter.Limit == nil || *filter.Limit <= 0 {
		filter.Limit = utils.Ptr(config.App.Booking.PageSize)
	}
	if filter.Page == nil || *filter.Page < 1 {
		filter.Page = utils.Ptr(1)
	}

	query := database.DB.Model(&model.Booking{}).
		Where("user_id = ? AND (is_active = ? OR status = ?)", helper.CurrentUser(c).ID, true, constants.BOOKING_CANCELLED)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	query = utils.ApplySorting(query, filter.Sort, filter.Dir, bookingSort, "date DESC, id DESC")
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Pet").Preload("Service").Preload("Package").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	booking, err := helper.LoadOwnBooking(database.DB, helper.CurrentUser(c).ID, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookingQR renders the check-in QR code of a booking as PNG.
func GetBookingQR(c *fiber.Ctx) error {
	booking, err := helper.LoadOwnBooking(database.DB, helper.CurrentUser(c).ID, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}

	png, err := utils.GenerateQRCode(utils.CheckInContent(config.App.App.BaseURL, booking.PublicCode), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Type("png")
	return c.Send(png)
}

func RescheduleBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("inputReschedule").(model.RescheduleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputReschedule missing"))
	}

	booking, err := helper.Reschedule(database.DB, helper.CurrentUser(c).ID, uint(c.Locals("inputId").(int)), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
	booking, err := helper.CancelBooking(c.UserContext(), database.DB, session.Default, helper.CurrentUser(c).ID, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetCalendar(c *fiber.Ctx) error {
	query, ok := c.Locals("calendarQuery").(model.CalendarQuery)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("calendarQuery missing"))
	}

	days, err := helper.MonthCalendar(database.DB, query.Year, query.Month)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, days)
}
