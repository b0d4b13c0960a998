// Package scoring contains the pure rating functions: answer weighting,
// score-to-category mapping, catalog merge and per-title aggregation. Nothing
// here performs I/O or holds state; callers hand in already-fetched rows and
// the live catalog.
package scoring

import (
	"math"

	"github.com/aarlint/wokeometer-api/internal/domain/catalog"
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

// Category is the discrete wokeness label derived from a numeric score.
type Category string

const (
	CategoryBased     Category = "Based"
	CategoryLimited   Category = "Limited Wokeness"
	CategoryWoke      Category = "Woke"
	CategoryVeryWoke  Category = "Very Woke"
	CategoryEgregious Category = "Egregiously Woke"
)

// maxQuestionPoints is the score a fully-weighted top answer contributes.
const maxQuestionPoints = 10.0

// Multiplier maps an answer to its scoring multiplier. The mapping is
// symmetric across both catalog generations: a legacy "Yes" and a current
// "Strongly Agree" carry the same weight, so a record saved under either era
// scores consistently. Unknown answers score 0 rather than erroring.
func Multiplier(answer string) float64 {
	switch answer {
	case entities.AnswerYes, entities.AnswerStronglyAgree:
		return 1.0
	case entities.AnswerAgree:
		return 0.7
	default:
		return 0
	}
}

// Contribution is the unrounded score a single answer adds: 10 * weight * multiplier.
func Contribution(weight float64, answer string) float64 {
	return maxQuestionPoints * weight * Multiplier(answer)
}

// CalculateScore computes the canonical (summation) score: the raw weighted
// sum of all answered, non-N/A entries, rounded to the nearest integer.
// Entries whose id is no longer in the catalog are skipped. The score is
// monotonically non-decreasing as more agree-type answers are added; an
// assessment with no scoreable answers scores 0.
func CalculateScore(answers []entities.AnsweredQuestion, questions []catalog.Question) int {
	sum, _ := weightedSum(answers, questions)
	return int(math.Round(sum))
}

// CalculateScoreAveraged computes the legacy score: the weighted sum rescaled
// by totalQuestions/answeredQuestions, which over-weights sparse assessments.
// Kept only for rows tagged ScoreAlgorithmAveraged; new rows never use it.
func CalculateScoreAveraged(answers []entities.AnsweredQuestion, questions []catalog.Question) int {
	sum, answered := weightedSum(answers, questions)
	if answered == 0 {
		return 0
	}
	return int(math.Round(sum * float64(len(questions)) / float64(answered)))
}

// ScoreAssessment scores a stored assessment with the algorithm recorded on
// the row. The algorithm is read from the tag, never inferred.
func ScoreAssessment(a *entities.Assessment, questions []catalog.Question) int {
	answers := a.AnsweredQuestions()
	if a.ScoreAlgorithm == entities.ScoreAlgorithmAveraged {
		return CalculateScoreAveraged(answers, questions)
	}
	return CalculateScore(answers, questions)
}

func weightedSum(answers []entities.AnsweredQuestion, questions []catalog.Question) (sum float64, answered int) {
	byID := make(map[int]float64, len(questions))
	for _, q := range questions {
		byID[q.ID] = q.Weight
	}
	for _, a := range answers {
		if !a.Answered() {
			continue
		}
		weight, ok := byID[a.QuestionID]
		if !ok {
			// Orphaned id from an older catalog revision.
			continue
		}
		answered++
		sum += maxQuestionPoints * weight * Multiplier(a.Answer)
	}
	return sum, answered
}

// CategoryForScore maps a score onto the fixed bands. Bands are
// inclusive-low/exclusive-high except the open top band; scores are never
// negative by construction.
func CategoryForScore(score int) Category {
	switch {
	case score <= 0:
		return CategoryBased
	case score <= 20:
		return CategoryLimited
	case score <= 40:
		return CategoryWoke
	case score <= 60:
		return CategoryVeryWoke
	default:
		return CategoryEgregious
	}
}
