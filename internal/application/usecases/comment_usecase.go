package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/aarlint/wokeometer-api/internal/domain/repositories"
	"github.com/google/uuid"
)

const maxCommentLength = 2000

// CommentUseCase implements ownership-scoped comment CRUD.
type CommentUseCase struct {
	repo repositories.CommentRepository
}

// NewCommentUseCase creates a new CommentUseCase.
func NewCommentUseCase(repo repositories.CommentRepository) *CommentUseCase {
	return &CommentUseCase{repo: repo}
}

// Create stores a comment on a title, owned by the caller.
func (u *CommentUseCase) Create(ctx context.Context, ident *entities.Identity, title, text string) (*entities.Comment, error) {
	if err := requireVerified(ident); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment is empty", entities.ErrInvalidInput)
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", entities.ErrInvalidInput, maxCommentLength)
	}

	c := &entities.Comment{
		ID:        uuid.NewString(),
		UserID:    ident.ID,
		ShowName:  title,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByTitle returns all comments for an exact title, newest first.
func (u *CommentUseCase) ListByTitle(ctx context.Context, title string) ([]entities.Comment, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	return u.repo.FindByTitle(ctx, title)
}

// Delete removes an owned comment.
func (u *CommentUseCase) Delete(ctx context.Context, ident *entities.Identity, id string) error {
	if err := requireVerified(ident); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed comment id", entities.ErrInvalidInput)
	}
	return u.repo.Delete(ctx, ident.ID, id)
}
