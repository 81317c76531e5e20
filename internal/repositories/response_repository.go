package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
)

type ResponseRepositoryInterface interface {
	ResponseExists(ctx context.Context, surveyID, employeeID uuid.UUID) (bool, error)
	CreateResponseWithAnswers(ctx context.Context, response *db_models.SurveyResponse) error
}

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) ResponseExists(ctx context.Context, surveyID, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SurveyResponse{}).
		Where("survey_id = ? AND employee_id = ?", surveyID, employeeID).
		Count(&count).Error
	return count > 0, err
}

// CreateResponseWithAnswers persists the response row and every answer
// row as one transaction. A concurrent duplicate that passed the
// existence check surfaces here as gorm.ErrDuplicatedKey from the
// (survey_id, employee_id) unique index.
func (r *ResponseRepository) CreateResponseWithAnswers(ctx context.Context, response *db_models.SurveyResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(response).Error
	})
}
