package handler

import (
	"errors"

	"presence_board/constants"
	"presence_board/database"
	"presence_board/model"
	"presence_board/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetUsersByDashboard(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)

	users := []model.User{}
	err := db.Where("dashboard_id = ?", dashboardId).
		Order("`order` ASC, id ASC").
		Find(&users).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func GetUserById(c *fiber.Ctx) error {
	db := database.DB
	userId := c.Locals("inputId").(uint)

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func CreateUser(c *fiber.Ctx) error {
	db := database.DB
	dashboardId := c.Locals("inputId").(uint)
	input, ok := c.Locals("createUserInput").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing user input"))
	}

	var dashboard model.Dashboard
	if err := db.First(&dashboard, dashboardId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DASHBOARD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{DashboardID: dashboardId}
	copier.Copy(&user, &input)
	if input.Width == nil {
		user.Width = constants.DEFAULT_SEAT_WIDTH
	}
	if input.Height == nil {
		user.Height = constants.DEFAULT_SEAT_HEIGHT
	}

	if err := db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"id": user.ID})
}

// UpdateUser applies a dynamic partial update and returns the freshly
// re-read row, so clients see server-computed fields like updated_at.
func UpdateUser(c *fiber.Ctx) error {
	db := database.DB
	userId := c.Locals("inputId").(uint)
	input, ok := c.Locals("updateUserInput").(model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing user input"))
	}

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := input.Updates()
	if len(updates) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var fresh model.User
	if err := db.First(&fresh, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fresh)
}

func DeleteUser(c *fiber.Ctx) error {
	db := database.DB
	userId := c.Locals("inputId").(uint)

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": userId})
}
