package db_models

import (
	"github.com/google/uuid"
)

type Employee struct {
	BaseModel
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName   string    `gorm:"type:text;not null"`
	Email      *string   `gorm:"type:text"`
	Department *string   `gorm:"type:text"`
}
