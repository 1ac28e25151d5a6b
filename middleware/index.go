package middleware

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/metrics"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Protected requires a valid access token whose account still exists and is active. The
// account is stored in the "currentUser" local.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		claim, err := helper.AccessClaim(jwtToken)
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

		c.Locals("claim", claim)
		c.Locals("currentUser", user)
		return c.Next()
	}
}

func requireRole(role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := helper.CurrentUser(c)
		if user == nil || user.Role != role {
			return utils.ErrorResponse(c, fiber.StatusForbidden, message, errors.New("role not allowed"))
		}
		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return requireRole(constants.ROLE_ADMIN, constants.NOT_ADMIN)
}

func MemberOnly() fiber.Handler {
	return requireRole(constants.ROLE_MEMBER, constants.NOT_MEMBER)
}

// Metrics counts requests per matched route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.IncHTTP(c.Route().Path)
		return err
	}
}
