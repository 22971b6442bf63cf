package utils

import (
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
