package handlers

import (
	"sbsoverseas/internal/content"
	applog "sbsoverseas/internal/log"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the per-domain read/write pair. Every domain shares
// the same two operations; the registry supplies the typed decode and the
// fallback default.
type ContentHandler struct {
	Store *content.Store
}

// GET /api/content/:domain
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	name := c.Params("domain")
	doc, err := h.Store.Read(name)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown content domain"})
	}
	return c.JSON(doc)
}

// POST /api/content/:domain — decodes into the domain's typed document
// before persisting, so malformed payloads never reach the file.
func (h *ContentHandler) Save(c *fiber.Ctx) error {
	name := c.Params("domain")
	if !content.Known(name) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown content domain"})
	}
	doc, err := content.Decode(name, c.Body())
	if err != nil {
		applog.Security(c, "content.save.reject", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "document does not match the expected shape"})
	}
	if err := h.Store.Write(name, doc); err != nil {
		applog.Error(c, "content.save.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save content"})
	}
	applog.Audit(c, "content.save", nil)
	return c.JSON(fiber.Map{"success": true})
}
