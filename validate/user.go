package validate

import (
	"strings"

	"presence_board/constants"
	"presence_board/model"
	"presence_board/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NAME_REQUIRED, nil)
		}
		if err := validate.Struct(input); err != nil {
			if strings.Contains(err.Error(), "Presence") {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRESENCE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "", err)
		}

		c.Locals("createUserInput", input)

		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateUserInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.USER_NAME_REQUIRED, nil)
			}
			input.Name = &name
		}
		if err := validate.Struct(input); err != nil {
			if strings.Contains(err.Error(), "Presence") {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRESENCE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "", err)
		}

		c.Locals("updateUserInput", input)

		return c.Next()
	}
}
