package scoring

import (
	"math"

	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

// TitleAggregate is the per-title summary computed across all assessments
// referencing that title. View-only; never persisted.
type TitleAggregate struct {
	Title              string                `json:"title"`
	Assessments        []entities.Assessment `json:"assessments"`
	AverageScore       int                   `json:"average_score"`
	TotalAssessments   int                   `json:"total_assessments"`
	PerQuestionAverage map[int]float64       `json:"per_question_average"`
}

// AggregateByTitle recomputes a title's summary from scratch. Titles join
// case-sensitively upstream (no normalization: "Show X" and "show x" are
// distinct titles, matching the stored data). Assessments referencing
// removed question ids are tolerated; the orphaned answers are skipped.
func AggregateByTitle(title string, assessments []entities.Assessment, questions []catalog.Question) TitleAggregate {
	agg := TitleAggregate{
		Title:              title,
		Assessments:        assessments,
		TotalAssessments:   len(assessments),
		PerQuestionAverage: map[int]float64{},
	}
	if len(assessments) == 0 {
		return agg
	}

	weights := make(map[int]float64, len(questions))
	for _, q := range questions {
		weights[q.ID] = q.Weight
	}

	scoreSum := 0
	perQuestionSum := map[int]float64{}
	perQuestionCount := map[int]int{}

	for i := range assessments {
		a := &assessments[i]
		scoreSum += ScoreAssessment(a, questions)

		for _, ans := range a.AnsweredQuestions() {
			if !ans.Answered() {
				continue
			}
			weight, ok := weights[ans.QuestionID]
			if !ok {
				continue
			}
			// Unrounded contribution; the mean is taken over however
			// many assessments answered this question, not the group size.
			perQuestionSum[ans.QuestionID] += Contribution(weight, ans.Answer)
			perQuestionCount[ans.QuestionID]++
		}
	}

	agg.AverageScore = int(math.Round(float64(scoreSum) / float64(len(assessments))))
	for id, sum := range perQuestionSum {
		agg.PerQuestionAverage[id] = sum / float64(perQuestionCount[id])
	}
	return agg
}
