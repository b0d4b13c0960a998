package handlers

import (
	"github.com/aarlint/wokeometer-api/internal/application/usecases"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentUseCase *usecases.CommentUseCase
}

func NewCommentHandler(commentUseCase *usecases.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type commentInput struct {
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CreateComment handles POST /comments.
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	var in commentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	comment, err := h.commentUseCase.Create(c.Context(), middleware.GetIdentity(c), in.Title, in.Comment)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /comments?title=.
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	comments, err := h.commentUseCase.ListByTitle(c.Context(), c.Query("title"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"comments": comments,
		"total":    len(comments),
	})
}

// DeleteComment handles DELETE /comments/:id.
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.commentUseCase.Delete(c.Context(), middleware.GetIdentity(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
