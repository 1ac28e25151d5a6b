package validate

import (
	"errors"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func Schedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ScheduleInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if (input.ServiceID == nil) == (input.PackageID == nil) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Choose exactly one service or package", errors.New("serviceId and packageId both set or both empty"), "serviceId")
		}

		c.Locals("inputSchedule", input)
		return c.Next()
	}
}

func SelectPet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SelectPetInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputSelectPet", input)
		return c.Next()
	}
}

func Reschedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RescheduleInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}

		c.Locals("inputReschedule", input)
		return c.Next()
	}
}

func BookingFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.BookingFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}

		c.Locals("bookingFilter", filter)
		return c.Next()
	}
}

func AdminBookingFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.AdminBookingFilter
		if ok, err := parseQuery(c, &filter); !ok {
			return err
		}
		if filter.Status != "" {
			status, ok := utils.CanonicalValue(filter.Status, constants.BOOKING_STATUS)
			if !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("status invalid"), "status")
			}
			filter.Status = status
		}

		c.Locals("adminBookingFilter", filter)
		return c.Next()
	}
}

func AdminBookingUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminBookingUpdateInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		if input.ServiceID != nil && input.PackageID != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Choose exactly one service or package", errors.New("serviceId and packageId both set"), "serviceId")
		}

		c.Locals("inputAdminBookingUpdate", input)
		return c.Next()
	}
}

func BookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookingStatusInput
		if ok, err := parseBody(c, &input); !ok {
			return err
		}
		status, ok := utils.CanonicalValue(input.Status, constants.BOOKING_STATUS)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("status invalid"), "status")
		}
		input.Status = status

		c.Locals("inputBookingStatus", input)
		return c.Next()
	}
}

func Calendar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query model.CalendarQuery
		if ok, err := parseQuery(c, &query); !ok {
			return err
		}

		c.Locals("calendarQuery", query)
		return c.Next()
	}
}
