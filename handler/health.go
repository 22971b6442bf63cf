package handler

import (
	"presence_board/database"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	if err := database.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("database not ready")
	}
	return c.SendString("ok")
}
