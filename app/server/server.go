// Package server assembles the fiber application.
package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"student-results/app/config"
	"student-results/app/database"
	"student-results/app/routes/dashboard"
	"student-results/app/routes/results"
	"student-results/app/routes/sections"
	"student-results/app/routes/students"
	"student-results/app/services"
	"student-results/app/templates"
)

// Options configures New.
type Options struct {
	Server config.ServerConfig
	// AccessLog enables the per-request log line.
	AccessLog bool
}

// New builds the application with every route registered.
func New(opts Options, store *database.Store, notifier *services.Notifier, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 templates.NewEngine(),
		ErrorHandler:          errorHandler(log),
		DisableStartupMessage: true,
	})

	// Middleware
	if opts.AccessLog {
		app.Use(logger.New())
	}
	if opts.Server.CORS {
		app.Use(cors.New())
	}

	dashboard.SetupDashboardRoutes(app, store, notifier)
	students.SetupStudentsRoutes(app, store, notifier, log)
	sections.SetupSectionsRoutes(app, store, notifier, log)
	results.SetupResultsRoutes(app, store, notifier, log)

	// Catch-all route for 404 errors (must be last)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// errorHandler handles HTTP errors: JSON for API requests, plain text otherwise
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"code":    code,
			})
		}

		return c.Status(code).SendString(err.Error())
	}
}
