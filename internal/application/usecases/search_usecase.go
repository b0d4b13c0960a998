package usecases

import (
	"context"
	"strings"

	"github.com/aarlint/wokeometer-api/internal/infrastructure/tmdb"
)

// TitleSearcher is the metadata-search collaborator boundary.
type TitleSearcher interface {
	Search(ctx context.Context, query string) ([]tmdb.Result, error)
}

// SearchUseCase wraps the title-metadata collaborator. Search is enrichment
// only; a failing upstream yields empty results plus a retryable error, never
// a hard failure.
type SearchUseCase struct {
	searcher TitleSearcher
}

// NewSearchUseCase creates a new SearchUseCase.
func NewSearchUseCase(searcher TitleSearcher) *SearchUseCase {
	return &SearchUseCase{searcher: searcher}
}

// Search returns candidate titles for a free-text query.
func (u *SearchUseCase) Search(ctx context.Context, query string) ([]tmdb.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []tmdb.Result{}, nil
	}
	return u.searcher.Search(ctx, query)
}
