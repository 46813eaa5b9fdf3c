package sections

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

func SetupSectionsRoutes(app *fiber.App, store *database.Store, notifier *services.Notifier, logger *zap.Logger) {
	h := &handler{store: store, notifier: notifier, logger: logger}

	api := app.Group("/api/sections")
	api.Get("/", h.GetSectionsAPI)
	api.Get("/:id", h.GetSectionAPI)
	api.Post("/", h.CreateSectionAPI)
	api.Put("/:id", h.UpdateSectionAPI)
	api.Delete("/:id", h.DeleteSectionAPI)
}
