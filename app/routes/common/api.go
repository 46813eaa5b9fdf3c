// Package common holds request and response helpers shared by the API
// route packages. Errors returned from here are *fiber.Error values and are
// rendered by the application's error handler.
package common

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"student-results/app/database"
	"student-results/app/models"
	"student-results/app/validation"
)

// ParamID parses the :id route parameter.
func ParamID(c *fiber.Ctx, t models.EntityType) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, t.Label()+" ID must be a number")
	}
	return id, nil
}

// BodyDraft decodes the JSON request body into the draft for t.
func BodyDraft(c *fiber.Ctx, t models.EntityType) (models.Draft, error) {
	d, err := models.DecodeDraft(t, c.Body())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return d, nil
}

// ValidationFailed writes the field errors for display beneath form fields.
func ValidationFailed(c *fiber.Ctx, errs validation.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"errors":  errs,
	})
}

// StoreError maps a store error to an HTTP error.
func StoreError(err error, t models.EntityType) error {
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, t.Label()+" not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to save "+string(t)+": "+err.Error())
}

// Message is the notification text for a successful change, e.g.
// "Student added successfully!".
func Message(t models.EntityType, verb string) string {
	return t.Label() + " " + verb + " successfully!"
}
