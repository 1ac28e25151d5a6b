package handler

import (
	"errors"
	"time"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

// GetHolidays lists salon closures, optionally those falling in one year. Recurring holidays
// are listed whatever the year.
func GetHolidays(c *fiber.Ctx) error {
	filter, ok := c.Locals("holidayFilter").(model.HolidayFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("holidayFilter missing"))
	}

	db := database.DB.Model(&model.Holiday{})
	if filter.Year != nil {
		start := utils.NewDate(*filter.Year, 1, 1)
		end := utils.NewDate(*filter.Year+1, 1, 1)
		db = db.Where("(date >= ? AND date < ?) OR is_recurring = ?", start, end, true)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var holidays []model.Holiday
	if err := utils.ApplyPagination(db.Order("date"), filter.Limit, filter.Page).Find(&holidays).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       holidays,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateHoliday(c *fiber.Ctx) error {
	input, ok := c.Locals("inputHoliday").(model.HolidayInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputHoliday missing"))
	}

	holiday, err := helper.CreateHoliday(database.DB, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, holiday)
}

func UpdateHoliday(c *fiber.Ctx) error {
	input, ok := c.Locals("inputHoliday").(model.HolidayInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputHoliday missing"))
	}

	holiday, err := helper.UpdateHoliday(database.DB, uint(c.Locals("inputId").(int)), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, holiday)
}

func DeleteHoliday(c *fiber.Ctx) error {
	if err := helper.DeleteHoliday(database.DB, uint(c.Locals("inputId").(int))); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Holiday deleted")
}

// GetClosedDays maps the holidays of one month to their names, for greying out a date picker.
func GetClosedDays(c *fiber.Ctx) error {
	query, ok := c.Locals("calendarQuery").(model.CalendarQuery)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("calendarQuery missing"))
	}

	days, err := helper.HolidaysInMonth(database.DB, query.Year, time.Month(query.Month))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, days)
}
