package sections

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"student-results/app/models"
	"student-results/app/routes/common"
	"student-results/app/services"
	"student-results/app/validation"
)

// GetSectionsAPI returns all sections with their enrolled student count
func (h *handler) GetSectionsAPI(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	sections := services.SectionResponses(snap.Sections, snap.Students)
	return c.JSON(fiber.Map{
		"sections": sections,
		"count":    len(sections),
	})
}

func (h *handler) GetSectionAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.SectionEntity)
	if err != nil {
		return err
	}

	section, err := h.store.GetSectionByID(id)
	if err != nil {
		return common.StoreError(err, models.SectionEntity)
	}

	return c.JSON(fiber.Map{"section": h.withCount(section)})
}

func (h *handler) CreateSectionAPI(c *fiber.Ctx) error {
	draft, err := common.BodyDraft(c, models.SectionEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	id, err := h.store.Create(draft)
	if err != nil {
		h.logger.Error("Failed to create section", zap.Error(err))
		return common.StoreError(err, models.SectionEntity)
	}
	section, err := h.store.GetSectionByID(id)
	if err != nil {
		return common.StoreError(err, models.SectionEntity)
	}

	h.logger.Info("Section created", zap.Int64("id", id), zap.String("name", section.Name))
	message := common.Message(models.SectionEntity, "added")
	h.notifier.Push(message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"section": h.withCount(section),
	})
}

// UpdateSectionAPI replaces a section. Students naming the old section
// name are not changed.
func (h *handler) UpdateSectionAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.SectionEntity)
	if err != nil {
		return err
	}

	draft, err := common.BodyDraft(c, models.SectionEntity)
	if err != nil {
		return err
	}

	if errs := validation.Validate(draft, h.store.Snapshot()); !errs.Valid() {
		return common.ValidationFailed(c, errs)
	}

	if err := h.store.Update(id, draft); err != nil {
		h.logger.Warn("Failed to update section", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.SectionEntity)
	}
	section, err := h.store.GetSectionByID(id)
	if err != nil {
		return common.StoreError(err, models.SectionEntity)
	}

	h.logger.Info("Section updated", zap.Int64("id", id))
	message := common.Message(models.SectionEntity, "updated")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{
		"message": message,
		"section": h.withCount(section),
	})
}

func (h *handler) DeleteSectionAPI(c *fiber.Ctx) error {
	id, err := common.ParamID(c, models.SectionEntity)
	if err != nil {
		return err
	}

	if err := h.store.Delete(models.SectionEntity, id); err != nil {
		h.logger.Warn("Failed to delete section", zap.Int64("id", id), zap.Error(err))
		return common.StoreError(err, models.SectionEntity)
	}

	h.logger.Info("Section deleted", zap.Int64("id", id))
	message := common.Message(models.SectionEntity, "deleted")
	h.notifier.Push(message)

	return c.JSON(fiber.Map{"message": message})
}

func (h *handler) withCount(section models.Section) models.SectionResponse {
	return models.SectionResponse{
		Section:      section,
		StudentCount: services.EnrollmentCount(section.Name, h.store.GetAllStudents()),
	}
}
