package handlers

import (
	"errors"

	"github.com/aarlint/wokeometer-api/internal/application/usecases"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	searchUseCase *usecases.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecases.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// SearchTitles handles GET /search?q=. Search is best-effort enrichment: an
// unavailable upstream degrades to an empty, retryable response instead of
// an error status, so the assessment flow is never blocked.
func (h *SearchHandler) SearchTitles(c *fiber.Ctx) error {
	results, err := h.searchUseCase.Search(c.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, entities.ErrUpstreamUnavailable) {
			return c.JSON(fiber.Map{
				"results":   []interface{}{},
				"total":     0,
				"retryable": true,
				"message":   "Title search is temporarily unavailable, please try again",
			})
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"results": results,
		"total":   len(results),
	})
}
