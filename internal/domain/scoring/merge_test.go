package scoring

import (
	"reflect"
	"testing"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

func TestMergeWithCatalogCoversFullCatalog(t *testing.T) {
	stored := []entities.AnsweredQuestion{{QuestionID: 2, Answer: entities.AnswerAgree}}
	merged := MergeWithCatalog(stored, testQuestions)

	if len(merged) != len(testQuestions) {
		t.Fatalf("merge must return exactly len(catalog)=%d entries, got %d", len(testQuestions), len(merged))
	}
	for i, m := range merged {
		if m.ID != testQuestions[i].ID {
			t.Fatalf("entry %d: expected catalog order id %d, got %d", i, testQuestions[i].ID, m.ID)
		}
	}
	if merged[1].Answer != entities.AnswerAgree {
		t.Fatalf("stored answer lost in merge: %+v", merged[1])
	}
	if merged[0].Answer != entities.AnswerNone || merged[2].Answer != entities.AnswerNone {
		t.Fatal("unanswered catalog questions must carry an empty answer")
	}
}

func TestMergeWithCatalogDropsOrphans(t *testing.T) {
	stored := []entities.AnsweredQuestion{
		{QuestionID: 999, Answer: entities.AnswerYes},
		{QuestionID: 1, Answer: entities.AnswerYes},
	}
	merged := MergeWithCatalog(stored, testQuestions)
	if len(merged) != len(testQuestions) {
		t.Fatalf("orphaned ids must be dropped, got %d entries", len(merged))
	}
	for _, m := range merged {
		if m.ID == 999 {
			t.Fatal("orphaned id survived the merge")
		}
	}
}

func TestMergeWithCatalogIdempotent(t *testing.T) {
	stored := []entities.AnsweredQuestion{
		{QuestionID: 1, Answer: entities.AnswerStronglyAgree},
		{QuestionID: 5, Answer: entities.AnswerNA},
	}
	once := MergeWithCatalog(stored, testQuestions)
	twice := MergeWithCatalog(answersOf(once), testQuestions)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestAnswersFiltersUnanswered(t *testing.T) {
	merged := MergeWithCatalog([]entities.AnsweredQuestion{
		{QuestionID: 1, Answer: entities.AnswerYes},
		{QuestionID: 2, Answer: entities.AnswerNA},
	}, testQuestions)

	got := Answers(merged)
	want := []entities.AnsweredQuestion{{QuestionID: 1, Answer: entities.AnswerYes}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Answers()=%+v, want %+v", got, want)
	}
}

// answersOf re-projects a merged result keeping every entry, answered or not.
func answersOf(merged []AnsweredCatalogQuestion) []entities.AnsweredQuestion {
	out := make([]entities.AnsweredQuestion, 0, len(merged))
	for _, m := range merged {
		out = append(out, entities.AnsweredQuestion{QuestionID: m.ID, Answer: m.Answer})
	}
	return out
}
