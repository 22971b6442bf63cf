package validate

import (
	"strings"

	"presence_board/constants"
	"presence_board/model"
	"presence_board/utils"

	"github.com/gofiber/fiber/v2"
)

// DashboardName parses and trims the dashboard_name payload shared by
// create and rename.
func DashboardName() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.DashboardNameInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		name := strings.TrimSpace(input.DashboardName)
		if name == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DASHBOARD_NAME_REQUIRED, nil)
		}

		c.Locals("dashboardName", name)

		return c.Next()
	}
}

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "", err)
		}

		c.Locals("settingsInput", input)

		return c.Next()
	}
}
