package handler

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

var userSort = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdat": "created_at",
	"points":    "points",
}

var appointmentSort = map[string]string{
	"date":   "bookings.date",
	"status": "bookings.status",
	"price":  "bookings.price",
}

func listUsers(c *fiber.Ctx, role string) error {
	filter, ok := c.Locals("userFilter").(model.UserFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("userFilter missing"))
	}

	query := database.DB.Model(&model.User{}).Where("role = ? AND is_temporary = ?", role, false)
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var users []model.User
	query = utils.ApplySorting(query, filter.Sort, filter.Dir, userSort, "id ASC")
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetMembers(c *fiber.Ctx) error { return listUsers(c, constants.ROLE_MEMBER) }

func GetAdmins(c *fiber.Ctx) error { return listUsers(c, constants.ROLE_ADMIN) }

func ToggleUserActive(c *fiber.Ctx) error {
	user, err := helper.ToggleUserActive(database.DB, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func GetAppointments(c *fiber.Ctx) error {
	filter, ok := c.Locals("adminBookingFilter").(model.AdminBookingFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("adminBookingFilter missing"))
	}

	query := database.DB.Model(&model.Booking{}).Joins("User")
	if !filter.ShowAll {
		query = query.Where("bookings.is_active = ?", true)
	}
	if email := strings.ToLower(strings.TrimSpace(filter.Email)); email != "" {
		query = query.Where(`LOWER("User".email) LIKE ?`, "%"+email+"%")
	}
	if filter.Status != "" {
		query = query.Where("bookings.status = ?", filter.Status)
	}
	if filter.ServiceID != nil {
		query = query.Where("bookings.service_id = ?", *filter.ServiceID)
	}
	if filter.PackageID != nil {
		query = query.Where("bookings.package_id = ?", *filter.PackageID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	query = utils.ApplySorting(query, filter.Sort, filter.Dir, appointmentSort, "bookings.date DESC, bookings.id DESC")
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

func GetAppointmentById(c *fiber.Ctx) error {
	booking, err := helper.LoadBooking(database.DB, uint(c.Locals("inputId").(int)))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func UpdateAppointment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAdminBookingUpdate").(model.AdminBookingUpdateInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputAdminBookingUpdate missing"))
	}

	booking, changed, err := helper.AdminUpdateBooking(database.DB, uint(c.Locals("inputId").(int)), &input)
	if err != nil {
		return respondError(c, err)
	}
	if !changed {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": constants.NO_CHANGES,
			"data":    booking,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// SetAppointmentStatus changes the status, announces it on the feed and mails the owner.
func SetAppointmentStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputBookingStatus").(model.BookingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputBookingStatus missing"))
	}

	booking, err := helper.SetBookingStatus(database.DB, uint(c.Locals("inputId").(int)), input.Status)
	if err != nil {
		return respondError(c, err)
	}
	helper.PublishStatus(c.UserContext(), helper.NewStatusEvent(booking))
	helper.QueueStatusMail(database.DB, booking)
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func DeleteAppointment(c *fiber.Ctx) error {
	if err := helper.DeleteBooking(database.DB, uint(c.Locals("inputId").(int))); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Appointment deleted")
}

func GetFAQs(c *fiber.Ctx) error {
	var faqs []model.FAQ
	if err := database.DB.Order("id").Find(&faqs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, faqs)
}

func CreateFAQ(c *fiber.Ctx) error {
	input, ok := c.Locals("inputFAQ").(model.FAQInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputFAQ missing"))
	}

	var faq model.FAQ
	copier.Copy(&faq, &input)
	if err := database.DB.Create(&faq).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, faq)
}

func UpdateFAQ(c *fiber.Ctx) error {
	input, ok := c.Locals("inputFAQ").(model.FAQInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputFAQ missing"))
	}

	var faq model.FAQ
	if err := database.DB.First(&faq, c.Locals("inputId").(int)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	copier.Copy(&faq, &input)
	if err := database.DB.Save(&faq).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, faq)
}

func DeleteFAQ(c *fiber.Ctx) error {
	result := database.DB.Delete(&model.FAQ{}, c.Locals("inputId").(int))
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, gorm.ErrRecordNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ deleted")
}
