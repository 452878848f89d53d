package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	schedules := api.Group("/schedules", handler.AuthRequired)
	schedules.Get("", handler.GetSchedules)
	schedules.Post("", handler.CreateSchedule)
	schedules.Put("/:id", handler.UpdateSchedule)
	schedules.Delete("/:id", handler.DeleteSchedule)
}
