package db_models

import (
	"github.com/google/uuid"
)

// Exactly one of the three value slots is populated, selected by the
// referenced question's type; the other two stay null.
type SurveyAnswer struct {
	BaseModel
	ResponseID   uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ValueNumber  *float64  `gorm:"type:double precision"`
	ValueString  *string   `gorm:"type:text"`
	ValueBoolean *bool
}
