package usecases

import (
	"context"
	"fmt"

	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/aarlint/wokeometer-api/internal/domain/repositories"
	"github.com/aarlint/wokeometer-api/internal/domain/scoring"
)

// AggregateUseCase computes per-title summaries. Each call recomputes from
// scratch; the store is the only state, so a fresh read after a save always
// reflects the save.
type AggregateUseCase struct {
	repo repositories.AssessmentRepository
}

// NewAggregateUseCase creates a new AggregateUseCase.
func NewAggregateUseCase(repo repositories.AssessmentRepository) *AggregateUseCase {
	return &AggregateUseCase{repo: repo}
}

// GetTitleAggregate returns the aggregate for one exact title. Title matching
// is case-sensitive: the title is the join key as stored.
func (u *AggregateUseCase) GetTitleAggregate(ctx context.Context, title string) (*scoring.TitleAggregate, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	rows, err := u.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	agg := scoring.AggregateByTitle(title, rows, catalog.Questions())
	return &agg, nil
}
