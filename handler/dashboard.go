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

func GetDashboards(c *fiber.Ctx) error {
	db := database.DB

	dashboards := []model.Dashboard{}
	if err := db.Order("id ASC").Find(&dashboards).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, dashboards)
}

func GetDashboardById(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)

	var dashboard model.Dashboard
	if err := db.First(&dashboard, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DASHBOARD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, dashboard)
}

func CreateDashboard(c *fiber.Ctx) error {
	db := database.DB
	name, ok := c.Locals("dashboardName").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing dashboard name"))
	}

	dashboard := model.Dashboard{DashboardName: name}
	if err := db.Create(&dashboard).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, dashboard)
}

func UpdateDashboard(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)
	name := c.Locals("dashboardName").(string)

	var dashboard model.Dashboard
	if err := db.First(&dashboard, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DASHBOARD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	dashboard.DashboardName = name
	if err := db.Save(&dashboard).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, dashboard)
}

// DeleteDashboard removes the board, its users, and its settings row in one
// transaction. The cascade is explicit, not a database-level FK cascade.
func DeleteDashboard(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)

	var dashboard model.Dashboard
	if err := db.First(&dashboard, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DASHBOARD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	if err := tx.Where("dashboard_id = ?", dashboardId).Delete(&model.User{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&model.DashboardSettings{}, dashboardId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Delete(&dashboard).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": dashboardId})
}
