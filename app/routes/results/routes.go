package results

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"student-results/app/database"
	"student-results/app/services"
)

type handler struct {
	store    *database.Store
	notifier *services.Notifier
	logger   *zap.Logger
}

// SetupResultsRoutes sets up all results-related routes
func SetupResultsRoutes(app *fiber.App, store *database.Store, notifier *services.Notifier, logger *zap.Logger) {
	h := &handler{store: store, notifier: notifier, logger: logger}

	api := app.Group("/api/results")
	api.Get("/", h.GetResultsAPI) // ?student=&subject= filters
	api.Get("/:id", h.GetResultAPI)
	api.Post("/", h.CreateResultAPI)
	api.Put("/:id", h.UpdateResultAPI)
	api.Delete("/:id", h.DeleteResultAPI)

	// Grades API routes
	gradesAPI := app.Group("/api/grades")
	gradesAPI.Get("/", GetGradeBandsAPI)
	gradesAPI.Get("/:marks", GetGradeAPI)
}
