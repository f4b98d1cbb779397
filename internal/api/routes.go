package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	logs := api.Group("", handler.AuthRequired)
	logs.Post("/meals", handler.CreateMeal)
	logs.Post("/sleep", handler.CreateSleepSession)
	logs.Post("/workouts", handler.CreateWorkout)
	logs.Post("/weights", handler.RecordWeight)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("/:date/score", handler.GetDayScore)
	days.Post("/:date/summary", handler.UpsertDaySummary)

	api.Get("/streak", handler.AuthRequired, handler.GetStreak)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	metrics := api.Group("/metrics", handler.AuthRequired)
	metrics.Get("/energy", handler.GetEnergyProfile)
	metrics.Post("/one-rep-max", handler.GetOneRepMax)
	metrics.Post("/progression", handler.GetProgression)
	metrics.Post("/plan", handler.BuildDeficitPlan)
}
