package handlers

import (
	"github.com/aarlint/wokeometer-api/internal/application/usecases"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transferUseCase *usecases.TransferUseCase
}

func NewTransferHandler(transferUseCase *usecases.TransferUseCase) *TransferHandler {
	return &TransferHandler{transferUseCase: transferUseCase}
}

// ExportAssessments handles GET /export/mine.
func (h *TransferHandler) ExportAssessments(c *fiber.Ctx) error {
	records, err := h.transferUseCase.Export(c.Context(), middleware.GetIdentity(c))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="assessments.json"`)
	return c.JSON(records)
}

// ImportAssessments handles POST /import. The batch is all-or-nothing: one
// malformed element rejects the whole payload before anything is written.
func (h *TransferHandler) ImportAssessments(c *fiber.Ctx) error {
	imported, err := h.transferUseCase.Import(c.Context(), middleware.GetIdentity(c), c.Body())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"imported": imported,
	})
}
