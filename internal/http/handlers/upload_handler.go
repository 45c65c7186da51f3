package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadHandler accepts a single multipart file and writes it into the
// public uploads directory under a timestamp-prefixed name. Raw bytes are
// stored as-is; there is no transcoding.
type UploadHandler struct {
	Dir string
}

// POST /api/upload
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file provided"})
	}
	if file.Size > maxUploadSize {
		applog.Security(c, "upload.too_large", map[string]any{"size": file.Size})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large (max 10MB)"})
	}
	base, ok := validate.FileName(file.Filename)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "filename", "value": file.Filename})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid filename"})
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		applog.Error(c, "upload.mkdir.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not store file"})
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
	if err := c.SaveFile(file, filepath.Join(h.Dir, name)); err != nil {
		applog.Error(c, "upload.write.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not store file"})
	}

	applog.Audit(c, "upload.save", map[string]any{"file": name, "size": file.Size})
	return c.JSON(fiber.Map{"imageUrl": "/uploads/" + name})
}
