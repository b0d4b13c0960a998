package handlers

import (
	"github.com/aarlint/wokeometer-api/internal/application/usecases"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	assessmentUseCase *usecases.AssessmentUseCase
	aggregateUseCase  *usecases.AggregateUseCase
}

func NewAssessmentHandler(assessmentUseCase *usecases.AssessmentUseCase, aggregateUseCase *usecases.AggregateUseCase) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUseCase: assessmentUseCase,
		aggregateUseCase:  aggregateUseCase,
	}
}

// CreateAssessment handles POST /assessments.
func (h *AssessmentHandler) CreateAssessment(c *fiber.Ctx) error {
	var in usecases.AssessmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	view, err := h.assessmentUseCase.Create(c.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetAssessment handles GET /assessments/:id.
func (h *AssessmentHandler) GetAssessment(c *fiber.Ctx) error {
	detail, err := h.assessmentUseCase.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// GetAssessments handles GET /assessments?title=.
func (h *AssessmentHandler) GetAssessments(c *fiber.Ctx) error {
	views, err := h.assessmentUseCase.ListByTitle(c.Context(), c.Query("title"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"assessments": views,
		"total":       len(views),
	})
}

// GetMyAssessments handles GET /assessments/mine.
func (h *AssessmentHandler) GetMyAssessments(c *fiber.Ctx) error {
	views, err := h.assessmentUseCase.ListByOwner(c.Context(), middleware.GetIdentity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"assessments": views,
		"total":       len(views),
	})
}

// UpdateAssessment handles PUT /assessments/:id.
func (h *AssessmentHandler) UpdateAssessment(c *fiber.Ctx) error {
	var in usecases.AssessmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	view, err := h.assessmentUseCase.Update(c.Context(), middleware.GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(view)
}

// DeleteAssessment handles DELETE /assessments/:id.
func (h *AssessmentHandler) DeleteAssessment(c *fiber.Ctx) error {
	if err := h.assessmentUseCase.Delete(c.Context(), middleware.GetIdentity(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Assessment deleted"})
}

// GetTitleAggregate handles GET /titles/:title/aggregate.
func (h *AssessmentHandler) GetTitleAggregate(c *fiber.Ctx) error {
	title, err := unescapeParam(c, "title")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid title parameter"})
	}
	agg, err := h.aggregateUseCase.GetTitleAggregate(c.Context(), title)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(agg)
}
