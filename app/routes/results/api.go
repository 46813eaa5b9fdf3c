package results

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"student-results/app/models"
	"student-results/app/routes/common"
	"student-results/app/services"
	"student-results/app/validation"
)

// GetResultsAPI returns the results matching the optional student and
// subject filters, each with its grade
func (h *handler) GetResultsAPI(c *fiber.Ctx) error {
	student := c.Query("student")
	subject := c.Query("subject")

	all := h.store.GetAllResults()
	filtered := services.FilterResults(all, student, subject)

	return c.JSON(fiber.Map{
		"results":      services.ResultResponses(filtered),
		"count":        len(filtered),
		"total_count":  len(all),
		"distribution": services.GradeDistribution(filtered),
	})
}

func (h *handler) GetResultAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.ResultEntity)
	if err != nil {
		return err
	}

	result, err := h.store.GetResultByID(id)
	if err != nil {
		return common.StoreError(err, models.ResultEntity)
	}

	return c.JSON(fiber.Map{"result": withGrade(result)})
}

// CreateResultAPI validates and stores a result. The student's current name
// is copied onto the result.
func (h *handler) CreateResultAPI(c *fiber.Ctx) error {
	draft, err := common.BodyDraft(c, models.ResultEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	id, err := h.store.Create(draft)
	if err != nil {
		h.logger.Error("Failed to create result", zap.Error(err))
		return common.StoreError(err, models.ResultEntity)
	}
	result, err := h.store.GetResultByID(id)
	if err != nil {
		return common.StoreError(err, models.ResultEntity)
	}

	h.logger.Info("Result created",
		zap.Int64("id", id),
		zap.Int64("student_id", result.StudentID),
		zap.String("subject", result.Subject),
		zap.Int("marks", result.Marks))
	message := common.Message(models.ResultEntity, "added")
	h.notifier.Push(message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"result":  withGrade(result),
	})
}

// UpdateResultAPI replaces a result and copies the student's name again
func (h *handler) UpdateResultAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.ResultEntity)
	if err != nil {
		return err
	}

	draft, err := common.BodyDraft(c, models.ResultEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	if err := h.store.Update(id, draft); err != nil {
		h.logger.Warn("Failed to update result", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.ResultEntity)
	}
	result, err := h.store.GetResultByID(id)
	if err != nil {
		return common.StoreError(err, models.ResultEntity)
	}

	h.logger.Info("Result updated", zap.Int64("id", id), zap.Int("marks", result.Marks))
	message := common.Message(models.ResultEntity, "updated")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{
		"message": message,
		"result":  withGrade(result),
	})
}

// DeleteResultAPI deletes a result
func (h *handler) DeleteResultAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.ResultEntity)
	if err != nil {
		return err
	}

	if err := h.store.Delete(models.ResultEntity, id); err != nil {
		h.logger.Warn("Failed to delete result", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.ResultEntity)
	}

	h.logger.Info("Result deleted", zap.Int64("id", id))
	message := common.Message(models.ResultEntity, "deleted")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{"message": message})
}

func withGrade(r models.Result) models.ResultResponse {
	return models.ResultResponse{Result: r, Grade: services.GradeOf(r.Marks)}
}
