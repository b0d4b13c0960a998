package scoring

import (
	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

// AnsweredCatalogQuestion is a catalog question joined with the caller's
// stored answer, ready for display or editing.
type AnsweredCatalogQuestion struct {
	catalog.Question
	Answer string `json:"answer"`
}

// MergeWithCatalog reconciles a stored assessment's sparse (id, answer) pairs
// with the live catalog. Every catalog question appears exactly once in
// catalog order: answered ones carry their stored answer, the rest carry ""
// so the full form is always presentable for editing. Stored ids that no
// longer exist in the catalog are dropped, which keeps the result a pure
// function of the catalog and makes the merge idempotent.
func MergeWithCatalog(stored []entities.AnsweredQuestion, questions []catalog.Question) []AnsweredCatalogQuestion {
	answers := make(map[int]string, len(stored))
	for _, s := range stored {
		answers[s.QuestionID] = s.Answer
	}

	merged := make([]AnsweredCatalogQuestion, 0, len(questions))
	for _, q := range questions {
		merged = append(merged, AnsweredCatalogQuestion{
			Question: q,
			Answer:   answers[q.ID],
		})
	}
	return merged
}

// Answers projects a merged result back to the sparse persisted form,
// keeping only entries with a scoreable answer. This is the shape written to
// the store: "" and "N/A" entries are never persisted.
func Answers(merged []AnsweredCatalogQuestion) []entities.AnsweredQuestion {
	out := make([]entities.AnsweredQuestion, 0, len(merged))
	for _, m := range merged {
		aq := entities.AnsweredQuestion{QuestionID: m.ID, Answer: m.Answer}
		if aq.Answered() {
			out = append(out, aq)
		}
	}
	return out
}
