package repositories

import (
	"context"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

// AssessmentRepository abstracts assessment storage. Mutations take the
// caller's owner id so the store filters rows by owner in addition to id;
// cross-owner mutation is rejected at the store layer, not just above it.
type AssessmentRepository interface {
	Create(ctx context.Context, a *entities.Assessment) error
	CreateAll(ctx context.Context, batch []entities.Assessment) error
	FindByID(ctx context.Context, id string) (*entities.Assessment, error)
	FindByTitle(ctx context.Context, title string) ([]entities.Assessment, error)
	FindByOwner(ctx context.Context, ownerID string) ([]entities.Assessment, error)
	Update(ctx context.Context, ownerID string, a *entities.Assessment) error
	Delete(ctx context.Context, ownerID, id string) error
}

// CommentRepository abstracts comment storage, ownership-scoped like assessments.
type CommentRepository interface {
	Create(ctx context.Context, c *entities.Comment) error
	FindByTitle(ctx context.Context, title string) ([]entities.Comment, error)
	FindByID(ctx context.Context, id string) (*entities.Comment, error)
	Delete(ctx context.Context, ownerID, id string) error
}
