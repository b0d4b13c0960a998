package handlers

import (
	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static question catalogs. No use case behind it;
// the catalog is immutable package data.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog handles GET /catalog.
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	questions := catalog.Questions()
	return c.JSON(fiber.Map{
		"questions":  questions,
		"categories": catalog.Categories(),
		"total":      len(questions),
	})
}

// GetLegacyCatalog handles GET /catalog/legacy.
func (h *CatalogHandler) GetLegacyCatalog(c *fiber.Ctx) error {
	questions := catalog.LegacyQuestions()
	return c.JSON(fiber.Map{
		"questions": questions,
		"total":     len(questions),
	})
}
