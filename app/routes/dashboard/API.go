package dashboard

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"student-results/app/models"
	"student-results/app/services"
)

// GetDashboard renders the tabbed students / sections / results page
func (h *handler) GetDashboard(c *fiber.Ctx) error {
	tab, err := models.ParseEntityType(c.Query("tab", "students"))
	if err != nil {
		tab = models.StudentEntity
	}
	filterStudent := c.Query("student")
	filterSubject := c.Query("subject")

	snap := h.store.Snapshot()
	results := services.FilterResults(snap.Results, filterStudent, filterSubject)

	return c.Render("index", fiber.Map{
		"Title":         "Student Result Management System",
		"ActiveTab":     tab.Plural(),
		"Tabs":          models.EntityTypes,
		"Students":      snap.Students,
		"Sections":      services.SectionResponses(snap.Sections, snap.Students),
		"Results":       services.ResultResponses(results),
		"FilterStudent": filterStudent,
		"FilterSubject": filterSubject,
		"Notifications": h.notifier.Active(time.Now()),
	})
}

// GetDashboardStatsAPI returns collection totals and the grade spread
func (h *handler) GetDashboardStatsAPI(c *fiber.Ctx) error {
	snap := h.store.Snapshot()

	average := 0.0
	if len(snap.Results) > 0 {
		total := 0
		for _, r := range snap.Results {
			total += r.Marks
		}
		average = math.Round(float64(total)/float64(len(snap.Results))*100) / 100
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_students": len(snap.Students),
			"total_sections": len(snap.Sections),
			"total_results":  len(snap.Results),
			"average_marks":  average,
			"distribution":   services.GradeDistribution(snap.Results),
		},
	})
}

// GetNotificationsAPI returns the notifications that have not yet expired
func (h *handler) GetNotificationsAPI(c *fiber.Ctx) error {
	active := h.notifier.Active(time.Now())
	return c.JSON(fiber.Map{
		"notifications": active,
		"count":         len(active),
	})
}
