package students

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"student-results/app/models"
	"student-results/app/routes/common"
	"student-results/app/validation"
)

func (h *handler) GetStudentsAPI(c *fiber.Ctx) error {
	students := h.store.GetAllStudents()
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// GetStudentByIDAPI returns a single student, used to prefill the edit form
func (h *handler) GetStudentByIDAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.StudentEntity)
	if err != nil {
		return err
	}

	student, err := h.store.GetStudentByID(id)
	if err != nil {
		return common.StoreError(err, models.StudentEntity)
	}

	return c.JSON(fiber.Map{"student": student})
}

func (h *handler) CreateStudentAPI(c *fiber.Ctx) error {
	draft, err := common.BodyDraft(c, models.StudentEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	id, err := h.store.Create(draft)
	if err != nil {
		h.logger.Error("Failed to create student", zap.Error(err))
		return common.StoreError(err, models.StudentEntity)
	}
	student, err := h.store.GetStudentByID(id)
	if err != nil {
		return common.StoreError(err, models.StudentEntity)
	}

	h.logger.Info("Student created", zap.Int64("id", id), zap.String("name", student.Name))
	message := common.Message(models.StudentEntity, "added")
	h.notifier.Push(message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"student": student,
	})
}

// UpdateStudentAPI replaces an existing student. Results keep the name they
// were saved with.
func (h *handler) UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.StudentEntity)
	if err != nil {
		return err
	}

	draft, err := common.BodyDraft(c, models.StudentEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	if err := h.store.Update(id, draft); err != nil {
		h.logger.Warn("Failed to update student", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.StudentEntity)
	}
	student, err := h.store.GetStudentByID(id)
	if err != nil {
		return common.StoreError(err, models.StudentEntity)
	}

	h.logger.Info("Student updated", zap.Int64("id", id))
	message := common.Message(models.StudentEntity, "updated")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{
		"message": message,
		"student": student,
	})
}

// DeleteStudentAPI deletes a student. Their results are kept.
func (h *handler) DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.StudentEntity)
	if err != nil {
		return err
	}

	if err := h.store.Delete(models.StudentEntity, id); err != nil {
		h.logger.Warn("Failed to delete student", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.StudentEntity)
	}

	h.logger.Info("Student deleted", zap.Int64("id", id))
	message := common.Message(models.StudentEntity, "deleted")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{"message": message})
}
