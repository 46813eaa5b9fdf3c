package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"student-results/app/database"
	"student-results/app/services"
)

type handler struct {
	store    *database.Store
	notifier *services.Notifier
}

func SetupDashboardRoutes(app *fiber.App, store *database.Store, notifier *services.Notifier) {
	h := &handler{store: store, notifier: notifier}

	app.Get("/", h.GetDashboard)

	api := app.Group("/api")
	api.Get("/dashboard/stats", h.GetDashboardStatsAPI)
	api.Get("/notifications", h.GetNotificationsAPI)
}
