package usecases

import (
	"context"
	"sort"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

// memAssessmentRepo is an in-memory AssessmentRepository with the same
// ownership semantics as the Postgres implementation.
type memAssessmentRepo struct {
	rows map[string]entities.Assessment
}

func newMemAssessmentRepo() *memAssessmentRepo {
	return &memAssessmentRepo{rows: map[string]entities.Assessment{}}
}

func (m *memAssessmentRepo) Create(_ context.Context, a *entities.Assessment) error {
	m.rows[a.ID] = *a
	return nil
}

func (m *memAssessmentRepo) CreateAll(_ context.Context, batch []entities.Assessment) error {
	for _, a := range batch {
		m.rows[a.ID] = a
	}
	return nil
}

func (m *memAssessmentRepo) FindByID(_ context.Context, id string) (*entities.Assessment, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &a, nil
}

func (m *memAssessmentRepo) FindByTitle(_ context.Context, title string) ([]entities.Assessment, error) {
	var out []entities.Assessment
	for _, a := range m.rows {
		if a.ShowName == title {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAssessmentRepo) FindByOwner(_ context.Context, ownerID string) ([]entities.Assessment, error) {
	var out []entities.Assessment
	for _, a := range m.rows {
		if a.UserID == ownerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memAssessmentRepo) Update(_ context.Context, ownerID string, a *entities.Assessment) error {
	existing, ok := m.rows[a.ID]
	if !ok {
		return entities.ErrNotFound
	}
	if existing.UserID != ownerID {
		return entities.ErrForbidden
	}
	existing.ShowName = a.ShowName
	existing.Questions = a.Questions
	existing.Category = a.Category
	existing.ShowDetails = a.ShowDetails
	m.rows[a.ID] = existing
	return nil
}

func (m *memAssessmentRepo) Delete(_ context.Context, ownerID, id string) error {
	existing, ok := m.rows[id]
	if !ok {
		return entities.ErrNotFound
	}
	if existing.UserID != ownerID {
		return entities.ErrForbidden
	}
	delete(m.rows, id)
	return nil
}

// memCommentRepo is an in-memory CommentRepository.
type memCommentRepo struct {
	rows map[string]entities.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{rows: map[string]entities.Comment{}}
}

func (m *memCommentRepo) Create(_ context.Context, c *entities.Comment) error {
	m.rows[c.ID] = *c
	return nil
}

func (m *memCommentRepo) FindByTitle(_ context.Context, title string) ([]entities.Comment, error) {
	var out []entities.Comment
	for _, c := range m.rows {
		if c.ShowName == title {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCommentRepo) FindByID(_ context.Context, id string) (*entities.Comment, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &c, nil
}

func (m *memCommentRepo) Delete(_ context.Context, ownerID, id string) error {
	existing, ok := m.rows[id]
	if !ok {
		return entities.ErrNotFound
	}
	if existing.UserID != ownerID {
		return entities.ErrForbidden
	}
	delete(m.rows, id)
	return nil
}

var (
	verifiedUser = &entities.Identity{ID: "user-aaaa-1111", Email: "a@example.com", EmailVerified: true}
	otherUser    = &entities.Identity{ID: "user-bbbb-2222", Email: "b@example.com", EmailVerified: true}
	unverified   = &entities.Identity{ID: "user-cccc-3333", Email: "c@example.com", EmailVerified: false}
)
