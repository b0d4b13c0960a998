package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"github.com/aarlint/wokeometer-api/internal/domain/repositories"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExportRecord is the interchange shape for one assessment. The derived
// score is deliberately absent: it is recomputed from the answers and the
// current catalog on every read, so exporting it would only let it go stale.
type ExportRecord struct {
	ID             string                      `json:"id"`
	Title          string                      `json:"title"`
	Questions      []entities.AnsweredQuestion `json:"questions"`
	Category       string                      `json:"category"`
	ScoreAlgorithm entities.ScoreAlgorithm     `json:"score_algorithm,omitempty"`
	ShowDetails    json.RawMessage             `json:"show_details,omitempty"`
	CreatedAt      time.Time                   `json:"created_at"`
}

// rawRecord mirrors ExportRecord with raw fields so Import can distinguish
// "absent" from "present but empty" before accepting the batch.
type rawRecord struct {
	ID             json.RawMessage         `json:"id"`
	Title          json.RawMessage         `json:"title"`
	Questions      json.RawMessage         `json:"questions"`
	Category       json.RawMessage         `json:"category"`
	ScoreAlgorithm entities.ScoreAlgorithm `json:"score_algorithm"`
	ShowDetails    json.RawMessage         `json:"show_details"`
	CreatedAt      time.Time               `json:"created_at"`
}

// TransferUseCase implements JSON export and all-or-nothing import of a
// caller's assessments.
type TransferUseCase struct {
	repo repositories.AssessmentRepository
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(repo repositories.AssessmentRepository) *TransferUseCase {
	return &TransferUseCase{repo: repo}
}

// Export returns the caller's assessments as interchange records. Reads only
// require an authenticated caller, not a verified email.
func (u *TransferUseCase) Export(ctx context.Context, ident *entities.Identity) ([]ExportRecord, error) {
	if !ident.Valid() {
		return nil, entities.ErrUnauthenticated
	}
	rows, err := u.repo.FindByOwner(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	records := make([]ExportRecord, 0, len(rows))
	for _, a := range rows {
		records = append(records, ExportRecord{
			ID:             a.ID,
			Title:          a.ShowName,
			Questions:      a.AnsweredQuestions(),
			Category:       a.Category,
			ScoreAlgorithm: a.ScoreAlgorithm,
			ShowDetails:    json.RawMessage(a.ShowDetails),
			CreatedAt:      a.CreatedAt,
		})
	}
	return records, nil
}

// Import validates and stores a batch of exported records. Validation is
// all-or-nothing: every element must carry id, title, questions and category
// or the whole batch is rejected before anything is written. Imported rows
// are stamped with the caller's ownership.
func (u *TransferUseCase) Import(ctx context.Context, ident *entities.Identity, payload []byte) (int, error) {
	if err := requireVerified(ident); err != nil {
		return 0, err
	}

	var raws []rawRecord
	if err := json.Unmarshal(payload, &raws); err != nil {
		return 0, fmt.Errorf("%w: payload is not a JSON array of assessments", entities.ErrInvalidInput)
	}

	batch := make([]entities.Assessment, 0, len(raws))
	for i, raw := range raws {
		if absent(raw.ID) || absent(raw.Title) || absent(raw.Questions) || absent(raw.Category) {
			return 0, fmt.Errorf("%w: element %d is missing a required field (id, title, questions, category)", entities.ErrInvalidInput, i)
		}
		var (
			id, title, category string
			questions           []entities.AnsweredQuestion
		)
		if err := json.Unmarshal(raw.ID, &id); err != nil {
			return 0, fmt.Errorf("%w: element %d has a malformed id", entities.ErrInvalidInput, i)
		}
		if _, err := uuid.Parse(id); err != nil {
			return 0, fmt.Errorf("%w: element %d has a malformed id", entities.ErrInvalidInput, i)
		}
		if err := json.Unmarshal(raw.Title, &title); err != nil || title == "" {
			return 0, fmt.Errorf("%w: element %d has a missing or empty title", entities.ErrInvalidInput, i)
		}
		if err := json.Unmarshal(raw.Category, &category); err != nil {
			return 0, fmt.Errorf("%w: element %d has a malformed category", entities.ErrInvalidInput, i)
		}
		if err := json.Unmarshal(raw.Questions, &questions); err != nil {
			return 0, fmt.Errorf("%w: element %d has malformed questions", entities.ErrInvalidInput, i)
		}
		answered := make([]entities.AnsweredQuestion, 0, len(questions))
		for _, q := range questions {
			if q.QuestionID <= 0 {
				return 0, fmt.Errorf("%w: element %d has a non-positive question id", entities.ErrInvalidInput, i)
			}
			// "" and "N/A" entries are filtered out before save, same as create
			if q.Answered() {
				answered = append(answered, q)
			}
		}

		a := entities.Assessment{
			ID:             id,
			UserID:         ident.ID,
			ShowName:       title,
			Category:       category,
			ScoreAlgorithm: raw.ScoreAlgorithm,
			CreatedAt:      raw.CreatedAt,
		}
		if a.ScoreAlgorithm == "" {
			a.ScoreAlgorithm = entities.ScoreAlgorithmSummation
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now().UTC()
		}
		if err := a.SetAnsweredQuestions(answered); err != nil {
			return 0, fmt.Errorf("%w: element %d has malformed questions", entities.ErrInvalidInput, i)
		}
		if len(raw.ShowDetails) > 0 {
			a.ShowDetails = datatypes.JSON(raw.ShowDetails)
		}
		batch = append(batch, a)
	}

	if err := u.repo.CreateAll(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// absent reports whether a required raw field was left out of the element.
// An explicit JSON null counts as absent.
func absent(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}
