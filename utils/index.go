package utils

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

// ApplySorting orders by allowed[sort] when the key is known, else by fallback.
func ApplySorting(query *gorm.DB, sort, dir string, allowed map[string]string, fallback string) *gorm.DB {
	column, ok := allowed[strings.ToLower(sort)]
	if !ok {
		return query.Order(fallback)
	}
	if strings.EqualFold(dir, "desc") {
		return query.Order(column + " DESC")
	}
	return query.Order(column + " ASC")
}

// Money rounds to 2 decimal places.
func Money(v float64) float64 {
	return math.Round(v*100) / 100
}

func Ptr[T any](v T) *T {
	return &v
}
