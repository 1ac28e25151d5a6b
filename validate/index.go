package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so keyError matches the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

// structError answers 400 naming the first invalid field.
func structError(c *fiber.Ctx, err error) error {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, fields[0].Field())
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
}

// parseBody decodes the JSON body into input and validates it. A non-nil error means the
// response has already been written.
func parseBody(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := validate.Struct(input); err != nil {
		return false, structError(c, err)
	}
	return true, nil
}

func parseQuery(c *fiber.Ctx, input any) (bool, error) {
	if err := c.QueryParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := validate.Struct(input); err != nil {
		return false, structError(c, err)
	}
	return true, nil
}

func checkPassword(c *fiber.Ctx, password, confirm, key string) (bool, error) {
	if !utils.IsStrongPassword(password) {
		return false, utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PASSWORD_POLICY, errors.New("weak password"), key)
	}
	if password != confirm {
		return false, utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PASSWORD_NOT_MATCH, errors.New("confirmPassword not same password"), "confirmPassword")
	}
	return true, nil
}
