package db_models

import (
	"github.com/google/uuid"
)

type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "DRAFT"
	SurveyStatusActive SurveyStatus = "ACTIVE"
	SurveyStatusClosed SurveyStatus = "CLOSED"
)

// Survey lifecycle: DRAFT -> ACTIVE -> CLOSED. CLOSED is terminal.
// Only ACTIVE surveys accept public submissions.
type Survey struct {
	BaseModel
	CompanyID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title     string       `gorm:"type:text;not null"`
	Status    SurveyStatus `gorm:"type:text;not null;default:DRAFT"`
	Questions []Question   `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}
