package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/aarlint/wokeometer-api/internal/domain/repositories"
	"github.com/aarlint/wokeometer-api/internal/domain/scoring"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentInput is the write payload for creating or replacing an assessment.
type AssessmentInput struct {
	Title       string                      `json:"title"`
	Category    string                      `json:"category"`
	Questions   []entities.AnsweredQuestion `json:"questions"`
	ShowDetails json.RawMessage             `json:"show_details,omitempty"`
}

// AssessmentView is an assessment decorated with its derived score and
// wokeness category. Score is always recomputed from the stored answers and
// the current catalog; it is never persisted.
type AssessmentView struct {
	entities.Assessment
	Score            int              `json:"score"`
	WokenessCategory scoring.Category `json:"wokeness_category"`
}

// AssessmentDetail additionally carries the full catalog merged with the
// stored answers, ready for an edit form.
type AssessmentDetail struct {
	AssessmentView
	MergedQuestions []scoring.AnsweredCatalogQuestion `json:"merged_questions"`
}

// AssessmentUseCase implements the assessment lifecycle: create, read,
// owner-scoped update and delete.
type AssessmentUseCase struct {
	repo repositories.AssessmentRepository
}

// NewAssessmentUseCase creates a new AssessmentUseCase.
func NewAssessmentUseCase(repo repositories.AssessmentRepository) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo}
}

// Create stores a new assessment owned by the caller. Only answered, non-N/A
// pairs are persisted; new rows are always tagged with the summation algorithm.
func (u *AssessmentUseCase) Create(ctx context.Context, ident *entities.Identity, in AssessmentInput) (*AssessmentView, error) {
	if err := requireVerified(ident); err != nil {
		return nil, err
	}
	a, err := buildAssessment(ident.ID, in)
	if err != nil {
		return nil, err
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	a.ScoreAlgorithm = entities.ScoreAlgorithmSummation

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	view := newView(*a)
	return &view, nil
}

// Get returns one assessment with its merged question list.
func (u *AssessmentUseCase) Get(ctx context.Context, id string) (*AssessmentDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed assessment id", entities.ErrInvalidInput)
	}
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AssessmentDetail{
		AssessmentView:  newView(*a),
		MergedQuestions: scoring.MergeWithCatalog(a.AnsweredQuestions(), catalog.Questions()),
	}, nil
}

// ListByTitle returns every assessment for an exact title, scored.
func (u *AssessmentUseCase) ListByTitle(ctx context.Context, title string) ([]AssessmentView, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	rows, err := u.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return newViews(rows), nil
}

// ListByOwner returns the caller's own assessments, newest first. Reads do
// not require a verified email, only an authenticated caller.
func (u *AssessmentUseCase) ListByOwner(ctx context.Context, ident *entities.Identity) ([]AssessmentView, error) {
	if !ident.Valid() {
		return nil, entities.ErrUnauthenticated
	}
	rows, err := u.repo.FindByOwner(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	return newViews(rows), nil
}

// Update replaces title, category, answers, and show details of an owned row.
// Ownership is checked here and again in the store's row filter.
func (u *AssessmentUseCase) Update(ctx context.Context, ident *entities.Identity, id string, in AssessmentInput) (*AssessmentView, error) {
	if err := requireVerified(ident); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed assessment id", entities.ErrInvalidInput)
	}
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != ident.ID {
		return nil, entities.ErrForbidden
	}

	a, err := buildAssessment(ident.ID, in)
	if err != nil {
		return nil, err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.ScoreAlgorithm = existing.ScoreAlgorithm

	if err := u.repo.Update(ctx, ident.ID, a); err != nil {
		return nil, err
	}
	view := newView(*a)
	return &view, nil
}

// Delete removes an owned row.
func (u *AssessmentUseCase) Delete(ctx context.Context, ident *entities.Identity, id string) error {
	if err := requireVerified(ident); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed assessment id", entities.ErrInvalidInput)
	}
	return u.repo.Delete(ctx, ident.ID, id)
}

// requireVerified gates every mutation: an identity must be present, sane,
// and email-verified before any state is touched.
func requireVerified(ident *entities.Identity) error {
	if !ident.Valid() {
		return entities.ErrUnauthenticated
	}
	if !ident.EmailVerified {
		return entities.ErrUnverified
	}
	return nil
}

func buildAssessment(ownerID string, in AssessmentInput) (*entities.Assessment, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidInput)
	}
	answered := make([]entities.AnsweredQuestion, 0, len(in.Questions))
	for _, q := range in.Questions {
		if q.QuestionID <= 0 {
			return nil, fmt.Errorf("%w: question id must be positive", entities.ErrInvalidInput)
		}
		// "" and "N/A" entries are filtered out before save
		if q.Answered() {
			answered = append(answered, q)
		}
	}

	a := &entities.Assessment{
		UserID:   ownerID,
		ShowName: in.Title,
		Category: in.Category,
	}
	if err := a.SetAnsweredQuestions(answered); err != nil {
		return nil, fmt.Errorf("%w: could not encode answers", entities.ErrInvalidInput)
	}
	if len(in.ShowDetails) > 0 {
		a.ShowDetails = datatypes.JSON(in.ShowDetails)
	}
	return a, nil
}

func newView(a entities.Assessment) AssessmentView {
	score := scoring.ScoreAssessment(&a, catalog.Questions())
	return AssessmentView{
		Assessment:       a,
		Score:            score,
		WokenessCategory: scoring.CategoryForScore(score),
	}
}

func newViews(rows []entities.Assessment) []AssessmentView {
	views := make([]AssessmentView, 0, len(rows))
	for _, a := range rows {
		views = append(views, newView(a))
	}
	return views
}
