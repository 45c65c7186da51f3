package handlers

import (
	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/repos"
	"sbsoverseas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type NewsletterHandler struct {
	News *repos.NewsletterRepo
}

// POST /api/subscribe
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid email"})
	}
	if err := h.News.Subscribe(email); err != nil {
		applog.Error(c, "newsletter.subscribe.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not subscribe"})
	}
	applog.Audit(c, "newsletter.subscribe", map[string]any{"email": email})
	return c.JSON(fiber.Map{"success": true})
}
