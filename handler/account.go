package handler

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func Me(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, helper.CurrentUser(c))
}

func UpdateProfile(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateProfile").(model.UpdateProfileInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputUpdateProfile missing"))
	}
	user := helper.CurrentUser(c)

	if err := copier.Copy(user, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if user.PhotoURL == "" {
		user.PhotoURL = constants.DEFAULT_USER_PHOTO
	}
	if err := database.DB.Model(user).Select("name", "gender", "phone_number", "photo_url").Updates(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputChangePassword missing"))
	}

	if err := helper.ChangePassword(database.DB, helper.CurrentUser(c), &input); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Password updated")
}

func LoginHistory(c *fiber.Ctx) error {
	var history []model.LoginHistory
	if err := database.DB.Where("user_id = ?", helper.CurrentUser(c).ID).
		Order("login_time DESC").Limit(50).Find(&history).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, history)
}
