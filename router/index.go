package router

import (
	"salon_manager/handler"
	"salon_manager/middleware"
	"salon_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	users := api.Group("/users")
	users.Get("/", middleware.Protected(), handler.GetUsers)
	users.Get("/:id", middleware.Protected(), validate.GetById("id"), handler.GetUserById)
	users.Post("/", middleware.OptionalJWT(), validate.CreateUser(), handler.CreateUser)
	users.Put("/:id", middleware.Protected(), validate.GetById("id"), validate.EditUser(), handler.UpdateUser)
	users.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteUser)

	salons := api.Group("/salons")
	salons.Get("/", handler.GetSalons)
	salons.Get("/:id", validate.GetById("id"), handler.GetSalonById)
	salons.Post("/", middleware.Protected(), validate.SalonBody(), handler.CreateSalon)
	salons.Put("/", middleware.Protected(), validate.SalonBody(), handler.UpdateSalon)
	salons.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteSalon)

	masters := api.Group("/masters")
	masters.Get("/", handler.GetMasters)
	masters.Get("/:id", validate.GetById("id"), handler.GetMasterById)
	masters.Post("/", middleware.Protected(), validate.MasterBody(), handler.CreateMaster)
	masters.Put("/", middleware.Protected(), validate.MasterBody(), handler.UpdateMaster)
	masters.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteMaster)

	offers := api.Group("/offers")
	offers.Get("/", handler.GetOffers)
	offers.Get("/:id", validate.GetById("id"), handler.GetOfferById)
	offers.Post("/", middleware.Protected(), validate.OfferBody(), validate.OfferPriceRange(), handler.CreateOffer)
	offers.Put("/", middleware.Protected(), validate.OfferBody(), validate.OfferPriceRange(), handler.UpdateOffer)
	offers.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteOffer)

	variants := api.Group("/variants")
	variants.Get("/", handler.GetVariants)
	variants.Get("/:id", validate.GetById("id"), handler.GetVariantById)
	variants.Post("/", middleware.Protected(), validate.VariantBody(), handler.CreateVariant)
	variants.Put("/", middleware.Protected(), validate.VariantBody(), handler.UpdateVariant)
	variants.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteVariant)

	options := api.Group("/options")
	options.Get("/", handler.GetOptions)
	options.Get("/:id", validate.GetById("id"), handler.GetOptionById)
	options.Post("/", middleware.Protected(), validate.OptionBody(), handler.CreateOption)
	options.Put("/", middleware.Protected(), validate.OptionBody(), handler.UpdateOption)
	options.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteOption)

	records := api.Group("/records")
	records.Get("/", middleware.Protected(), handler.GetRecords)
	records.Get("/:id", middleware.Protected(), validate.GetById("id"), handler.GetRecordById)
	records.Get("/:id/qr", middleware.Protected(), validate.GetById("id"), handler.GetRecordQR)
	records.Post("/", middleware.Protected(), validate.RecordBody(), validate.RecordTimeWindow(), handler.CreateRecord)
	records.Put("/", middleware.Protected(), validate.RecordBody(), validate.RecordTimeWindow(), handler.UpdateRecord)
	records.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteRecord)

	categories := api.Group("/categories")
	categories.Get("/", handler.GetCategories)
	categories.Get("/:id", validate.GetById("id"), handler.GetCategoryById)
	categories.Post("/", middleware.Protected(), validate.CategoryBody(), handler.CreateCategory)
	categories.Put("/", middleware.Protected(), validate.CategoryBody(), handler.UpdateCategory)
	categories.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteCategory)

	images := api.Group("/images")
	images.Get("/", handler.GetImages)
	images.Get("/:id", validate.GetById("id"), handler.GetImageById)
	images.Post("/", middleware.Protected(), validate.ImageBody(), handler.CreateImage)
	images.Post("/upload", middleware.Protected(), handler.UploadImage)
	images.Post("/signature", middleware.Protected(), handler.GenerateUploadSignature)
	images.Put("/", middleware.Protected(), validate.ImageBody(), handler.UpdateImage)
	images.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteImages)
	images.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteImage)

	timeTables := api.Group("/time-tables")
	timeTables.Get("/", handler.GetTimeTables)
	timeTables.Get("/:id", validate.GetById("id"), handler.GetTimeTableById)
	timeTables.Post("/", middleware.Protected(), validate.TimeTableBody(), handler.CreateTimeTable)
	timeTables.Put("/", middleware.Protected(), validate.TimeTableBody(), handler.UpdateTimeTable)
	timeTables.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteTimeTable)

	subscribers := api.Group("/subscribers")
	subscribers.Get("/", middleware.Protected(), handler.GetSubscribers)
	subscribers.Get("/:id", middleware.Protected(), validate.GetById("id"), handler.GetSubscriberById)
	subscribers.Post("/", validate.SubscriberBody(), handler.CreateSubscriber)
	subscribers.Put("/", middleware.Protected(), validate.SubscriberBody(), handler.UpdateSubscriber)
	subscribers.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteSubscriber)

	search := api.Group("/_search")
	search.Get("/salons", handler.SearchSalons)
	search.Get("/masters", handler.SearchMasters)
	search.Get("/offers", handler.SearchOffers)
	search.Get("/variants", handler.SearchVariants)
	search.Get("/options", handler.SearchOptions)
	search.Get("/records", middleware.Protected(), handler.SearchRecords)
	search.Get("/categories", handler.SearchCategories)
	search.Get("/images", handler.SearchImages)
	search.Get("/time-tables", handler.SearchTimeTables)
	search.Get("/subscribers", middleware.Protected(), handler.SearchSubscribers)
	search.Get("/users", middleware.Protected(), handler.SearchUsers)

	app.Get("/ws/salons/:id/records", websocket.New(handler.RecordFeed))
}
