package handler

import (
	"fmt"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
)

func SalesReport(c *fiber.Ctx) error {
	report, err := helper.SalesReport(database.DB, helper.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

// SalesReportWorkbook sends the sales report as an xlsx attachment.
func SalesReportWorkbook(c *fiber.Ctx) error {
	now := helper.Now()
	report, err := helper.SalesReport(database.DB, now)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	content, err := helper.SalesWorkbook(report)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sales-%s.xlsx"`, now.Format("2006-01-02")))
	return c.Send(content)
}
