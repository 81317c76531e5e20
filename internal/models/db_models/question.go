package db_models

import (
	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionTypeRating  QuestionType = "RATING" // 0-10 integer scale
	QuestionTypeBoolean QuestionType = "BOOLEAN"
	QuestionTypeText    QuestionType = "TEXT"
)

// Order is 1-based and unique within a survey; gaps are permitted.
type Question struct {
	BaseModel
	SurveyID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_questions_survey_order"`
	Text     string       `gorm:"type:text;not null"`
	Type     QuestionType `gorm:"type:text;not null"`
	Order    int          `gorm:"column:question_order;not null;uniqueIndex:idx_questions_survey_order"`
}
