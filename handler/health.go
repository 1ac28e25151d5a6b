package handler

import (
	"context"
	"time"

	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/session"

	"github.com/gofiber/fiber/v2"
)

// Health reports the database and redis state. Only a database failure makes it unhealthy.
func Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	result := fiber.Map{"database": "ok", "redis": "disabled"}
	if err := database.Ping(); err != nil {
		status = fiber.StatusServiceUnavailable
		result["database"] = err.Error()
	}
	if helper.FeedClient != nil {
		result["redis"] = "ok"
		if err := session.Ping(ctx, helper.FeedClient); err != nil {
			result["redis"] = err.Error()
		}
	}
	if store, ok := session.Default.(*session.FailoverStore); ok && store.IsDown() {
		result["session"] = "memory fallback"
	}

	return c.Status(status).JSON(result)
}
