package handlers

import (
	"errors"

	"sbsoverseas/internal/domain"
	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/services"
	"sbsoverseas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	Subs *services.SubmissionService
}

// listType maps the query parameter onto a collection: "order" selects the
// order submissions, anything else (including absent) the inquiries.
func listType(c *fiber.Ctx) string {
	if c.Query("type") == domain.SubmissionOrder {
		return domain.SubmissionOrder
	}
	return domain.SubmissionContact
}

// POST /api/submissions — public; routed by the body's type field.
func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	var sub domain.Submission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid submission body"})
	}
	if _, ok := validate.Email(sub.Email); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a valid email is required"})
	}
	if _, ok := validate.Name(sub.Name); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	saved, err := h.Subs.Save(sub)
	if err != nil {
		if errors.Is(err, services.ErrMissingContact) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		applog.Error(c, "submission.save.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save submission"})
	}
	applog.Audit(c, "submission.save", map[string]any{"id": saved.ID, "type": saved.Type})
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GET /api/submissions?type=order|inquiry — admin only.
func (h *SubmissionHandler) List(c *fiber.Ctx) error {
	subs, err := h.Subs.List(listType(c))
	if err != nil {
		applog.Error(c, "submission.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load submissions"})
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	return c.JSON(subs)
}

// DELETE /api/submissions/:id?type= — admin only.
func (h *SubmissionHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Subs.DeleteByID(id, listType(c)); err != nil {
		applog.Error(c, "submission.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not delete submission"})
	}
	applog.Audit(c, "submission.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}
