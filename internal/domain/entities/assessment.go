package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Answer values accepted across both catalog generations. Legacy rows carry
// Yes/No, current rows carry the four-point agreement scale. The scoring
// engine accepts either era, so a record that outlived a schema change still
// scores consistently.
const (
	AnswerNone          = ""
	AnswerNA            = "N/A"
	AnswerNo            = "No"
	AnswerYes           = "Yes"
	AnswerDisagree      = "Disagree"
	AnswerAgree         = "Agree"
	AnswerStronglyAgree = "Strongly Agree"
)

// ScoreAlgorithm tags which scoring generation a stored assessment belongs to.
// It is recorded at write time and never inferred from the answers.
type ScoreAlgorithm string

const (
	// ScoreAlgorithmSummation is the canonical algorithm: raw weighted sum.
	ScoreAlgorithmSummation ScoreAlgorithm = "summation"
	// ScoreAlgorithmAveraged is the legacy algorithm that rescales by
	// completeness. Kept only so historical rows keep their historical score.
	ScoreAlgorithmAveraged ScoreAlgorithm = "averaged"
)

// AnsweredQuestion is the only per-question data persisted with an
// assessment. Everything else (text, weight, category) is re-joined from the
// live catalog at read time.
type AnsweredQuestion struct {
	QuestionID int    `json:"id"`
	Answer     string `json:"answer"`
}

// Answered reports whether the entry carries a scoreable answer.
func (a AnsweredQuestion) Answered() bool {
	return a.Answer != AnswerNone && a.Answer != AnswerNA
}

// Assessment is one user's set of answers for one title.
type Assessment struct {
	ID             string         `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID         string         `json:"user_id" gorm:"column:user_id;index:idx_assessments_user_created,priority:1"`
	ShowName       string         `json:"show_name" gorm:"column:show_name;index"`
	Questions      datatypes.JSON `json:"questions" gorm:"column:questions;type:jsonb"`
	Category       string         `json:"category" gorm:"column:category"`
	ScoreAlgorithm ScoreAlgorithm `json:"score_algorithm" gorm:"column:score_algorithm;default:summation"`
	ShowDetails    datatypes.JSON `json:"show_details,omitempty" gorm:"column:show_details;type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"column:created_at;index:idx_assessments_user_created,priority:2"`
}

// AnsweredQuestions decodes the stored questions payload. A row with a
// malformed payload yields an empty slice rather than an error so a single
// bad row never blocks a title's aggregate.
func (a *Assessment) AnsweredQuestions() []AnsweredQuestion {
	if len(a.Questions) == 0 {
		return nil
	}
	var out []AnsweredQuestion
	if err := json.Unmarshal(a.Questions, &out); err != nil {
		return nil
	}
	return out
}

// SetAnsweredQuestions encodes the answer pairs into the stored payload.
func (a *Assessment) SetAnsweredQuestions(qs []AnsweredQuestion) error {
	raw, err := json.Marshal(qs)
	if err != nil {
		return err
	}
	a.Questions = datatypes.JSON(raw)
	return nil
}

func (Assessment) TableName() string {
	return "assessments"
}
