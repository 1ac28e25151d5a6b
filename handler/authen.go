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

func setTokenCookies(c *fiber.Ctx, tokens model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// loginSuccess issues tokens for user and answers with them and the account.
func loginSuccess(c *fiber.Ctx, user *model.User) error {
	tokens, err := helper.IssueTokens(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookies(c, tokens)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"role":         user.Role,
		"user":         user,
	})
}

func Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputRegister missing"))
	}

	user, err := helper.RegisterUser(database.DB, &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func VerifyEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	token := c.Query("token")
	if email == "" || token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TOKEN, errors.New("email and token are required"))
	}

	if err := helper.VerifyEmail(database.DB, email, token); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Email verified")
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputLogin missing"))
	}

	user, err := helper.Login(c.UserContext(), database.DB, session.Default, &input, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return loginSuccess(c, user)
}

func RefreshToken(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRefreshToken").(model.RefreshTokenInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputRefreshToken missing"))
	}

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	claim, err := helper.RefreshClaim(token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	user, err := helper.GetUserByID(database.DB, claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_FOUND, helper.ErrUserNotFound)
	}
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, helper.ErrUserInactive)
	}

	tokens, err := helper.IssueTokens(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookies(c, tokens)
	return utils.SuccessResponse(c, fiber.StatusOK, tokens)
}

func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputForgotPassword missing"))
	}

	if err := helper.ForgotPassword(database.DB, input.Email); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Password reset mail sent")
}

func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputResetPassword missing"))
	}

	if err := helper.ResetPassword(database.DB, &input); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Password updated")
}

// TemporaryLogin creates a demo account from the X-Temp-Login-Token and X-Temp-Login-Role headers.
func TemporaryLogin(c *fiber.Ctx) error {
	result, err := helper.TemporaryLogin(database.DB, c.Get("X-Temp-Login-Token"), c.Get("X-Temp-Login-Role"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func TempTokenLogin(c *fiber.Ctx) error {
	input, ok := c.Locals("inputTempToken").(model.TempTokenInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputTempToken missing"))
	}

	user, err := helper.TempTokenLogin(database.DB, input.Token)
	if err != nil {
		return respondError(c, err)
	}
	helper.RecordLogin(database.DB, user.ID, c.Get(fiber.HeaderUserAgent), c.IP())
	return loginSuccess(c, user)
}
