package main

import (
	"log"

	"presence_board/config"
	"presence_board/database"
	"presence_board/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	database.ConnectDB()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}
