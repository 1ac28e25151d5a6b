package validate

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		if ok, err := checkPassword(c, input.Password, input.ConfirmPassword, "password"); !ok {
			return err
		}
		input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
		if !utils.IsValidPhone(input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phone number must look like +60123456789", errors.New("phone invalid"), "phoneNumber")
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func RefreshToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RefreshTokenInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputRefreshToken", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputForgotPassword", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if ok, err := checkPassword(c, input.Password, input.ConfirmPassword, "password"); !ok {
			return err
		}

		c.Locals("inputResetPassword", input)
		return c.Next()
	}
}

func TempToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TempTokenInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputTempToken", input)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProfileInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
		if !utils.IsValidPhone(input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phone number must look like +60123456789", errors.New("phone invalid"), "phoneNumber")
		}

		c.Locals("inputUpdateProfile", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangePasswordInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if ok, err := checkPassword(c, input.NewPassword, input.ConfirmPassword, "newPassword"); !ok {
			return err
		}

		c.Locals("inputChangePassword", input)
		return c.Next()
	}
}
