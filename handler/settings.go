package handler

import (
	"errors"

	"presence_board/constants"
	"presence_board/database"
	"presence_board/model"
	"presence_board/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetSettings never 404s for a missing settings row: a dashboard that has
// never been configured reads as the default object.
func GetSettings(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)

	var settings model.DashboardSettings
	if err := db.First(&settings, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, model.DefaultSettings(dashboardId))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// UpdateSettings upserts: the first write for a dashboard creates the row
// from the defaults, every write touches only the supplied columns.
func UpdateSettings(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)
	input, ok := c.Locals("settingsInput").(model.UpdateSettingsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing settings input"))
	}

	var dashboard model.Dashboard
	if err := db.First(&dashboard, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DASHBOARD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := input.Updates()
	if len(updates) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	var settings model.DashboardSettings
	if err := db.First(&settings, dashboardId).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		settings = model.DefaultSettings(dashboardId)
		if err := db.Create(&settings).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := db.Model(&settings).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": dashboardId})
}
