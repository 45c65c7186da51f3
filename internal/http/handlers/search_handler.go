package handlers

import (
	"strings"

	"sbsoverseas/internal/domain"
	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/services"
	"sbsoverseas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products/search?q=
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		return c.JSON(fiber.Map{"products": []domain.Product{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
	}

	products, err := h.Catalog.Search(q)
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load results"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}
