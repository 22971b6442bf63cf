package router

import (
	"presence_board/handler"
	"presence_board/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handler.Health)

	api := app.Group("/api", logger.New())

	dashboards := api.Group("/dashboards")
	dashboards.Get("/", handler.GetDashboards)
	dashboards.Get("/:id", validate.GetById("id"), handler.GetDashboardById)
	dashboards.Post("/", validate.DashboardName(), handler.CreateDashboard)
	dashboards.Put("/:id", validate.GetById("id"), validate.DashboardName(), handler.UpdateDashboard)
	dashboards.Delete("/:id", validate.GetById("id"), handler.DeleteDashboard)

	dashboards.Get("/:id/settings", validate.GetById("id"), handler.GetSettings)
	dashboards.Put("/:id/settings", validate.GetById("id"), validate.UpdateSettings(), handler.UpdateSettings)

	dashboards.Get("/:id/users", validate.GetById("id"), handler.GetUsersByDashboard)
	dashboards.Post("/:id/users", validate.GetById("id"), validate.CreateUser(), handler.CreateUser)

	users := api.Group("/users")
	users.Get("/:id", validate.GetById("id"), handler.GetUserById)
	users.Put("/:id", validate.GetById("id"), validate.UpdateUser(), handler.UpdateUser)
	users.Delete("/:id", validate.GetById("id"), handler.DeleteUser)
}
