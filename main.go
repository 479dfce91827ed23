package main

import (
	"log"

	"driving_school_manager/config"
	"driving_school_manager/database"
	"driving_school_manager/handler"
	"driving_school_manager/helper"
	"driving_school_manager/logger"
	"driving_school_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	logger.Init(config.ConfigOr("APP_ENV", "development"))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	handler.InitNotifications()

	helper.StartSlotScheduler()
	defer helper.StopSlotScheduler()
	helper.StartTicketClassScheduler()
	defer helper.StopTicketClassScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
