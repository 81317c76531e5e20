package db_models

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponse is one employee's full submission for one survey.
// The composite unique index backs the at-most-one-response rule: the
// service pre-checks, and a concurrent duplicate that slips past the
// check fails on commit instead of producing a second row.
type SurveyResponse struct {
	BaseModel
	SurveyID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_responses_survey_employee"`
	EmployeeID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_responses_survey_employee"`
	SubmittedAt time.Time      `gorm:"not null;index"`
	Answers     []SurveyAnswer `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
}
