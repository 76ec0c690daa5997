package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"salon_manager/config"
	"salon_manager/database"
	"salon_manager/helper"
	"salon_manager/router"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie, X-Total-Count, Link",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartRecordStatusScheduler()
	defer helper.StopRecordStatusScheduler()
	helper.StartSubscriberDigest()
	defer helper.StopSubscriberDigest()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
