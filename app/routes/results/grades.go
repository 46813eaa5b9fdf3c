package results

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"student-results/app/services"
	"student-results/app/validation"
)

// GetGradeBandsAPI returns the grading scale
func GetGradeBandsAPI(c *fiber.Ctx) error {
	bands := make([]fiber.Map, len(services.GradeBands))
	for i, band := range services.GradeBands {
		bands[i] = fiber.Map{
			"grade":     band.Grade.Letter,
			"color":     band.Grade.Color,
			"min_marks": band.MinMarks,
			"max_marks": band.MaxMarks,
		}
	}
	return c.JSON(fiber.Map{"grades": bands})
}

// GetGradeAPI returns the grade for the marks in the path
func GetGradeAPI(c *fiber.Ctx) error {
	marks, err := strconv.Atoi(c.Params("marks"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validation.MsgMarksNotInteger)
	}
	if marks < validation.MinMarks || marks > validation.MaxMarks {
		return fiber.NewError(fiber.StatusBadRequest, validation.MsgMarksOutOfRange)
	}

	grade := services.GradeOf(marks)
	return c.JSON(fiber.Map{
		"marks": marks,
		"grade": grade.Letter,
		"color": grade.Color,
	})
}
