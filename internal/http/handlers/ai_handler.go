package handlers

import (
	"context"
	"encoding/json"
	"strings"

	applog "sbsoverseas/internal/log"

	"github.com/gofiber/fiber/v2"
)

// Generator produces text for a prompt. The production implementation talks
// to the Gemini API; tests stub it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AIHandler forwards prompts to the model provider. A nil Gen means no API
// key was configured; the route stays mounted and answers 503.
type AIHandler struct {
	Gen Generator
}

// POST /api/generate — returns the model's reply as parsed JSON when it is
// valid JSON, otherwise wrapped as {"text": ...}.
func (h *AIHandler) Generate(c *fiber.Ctx) error {
	if h.Gen == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "generation is not configured"})
	}
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}

	text, err := h.Gen.Generate(c.UserContext(), body.Prompt)
	if err != nil {
		applog.Error(c, "ai.generate.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "generation failed"})
	}

	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(trimmed)
	}
	return c.JSON(fiber.Map{"text": text})
}
