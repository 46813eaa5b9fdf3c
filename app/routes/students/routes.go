package students

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

func SetupStudentsRoutes(app *fiber.App, store *database.Store, notifier *services.Notifier, logger *zap.Logger) {
	h := &handler{store: store, notifier: notifier, logger: logger}

	api := app.Group("/api/students")
	api.Get("/", h.GetStudentsAPI)         // Get all students
	api.Get("/:id", h.GetStudentByIDAPI)   // Get single student by ID
	api.Post("/", h.CreateStudentAPI)      // Create new student
	api.Put("/:id", h.UpdateStudentAPI)    // Replace existing student
	api.Delete("/:id", h.DeleteStudentAPI) // Delete student
}
