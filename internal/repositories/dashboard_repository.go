package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "pulso/internal/models/db_models"
)

type DashboardRepository interface {
	// Roster size, unwindowed.
	CountEmployees(ctx context.Context, companyID uuid.UUID) (int64, error)

	// Distinct employees with at least one response to any of the
	// tenant's surveys submitted at or after since.
	CountDistinctRespondents(ctx context.Context, companyID uuid.UUID, since time.Time) (int64, error)

	// Numeric values of every in-window answer to a RATING question
	// belonging to the tenant's surveys.
	RatingValues(ctx context.Context, companyID uuid.UUID, since time.Time) ([]float64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Employee{}).
		Where("company_id = ?", companyID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountDistinctRespondents(ctx context.Context, companyID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.SurveyResponse{}).
		Joins("JOIN surveys ON surveys.id = survey_responses.survey_id").
		Where("surveys.company_id = ? AND survey_responses.submitted_at >= ?", companyID, since).
		Distinct("survey_responses.employee_id").
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) RatingValues(ctx context.Context, companyID uuid.UUID, since time.Time) ([]float64, error) {
	var values []float64
	err := r.db.WithContext(ctx).
		Model(&dbm.SurveyAnswer{}).
		Joins("JOIN questions ON questions.id = survey_answers.question_id").
		Joins("JOIN survey_responses ON survey_responses.id = survey_answers.response_id").
		Joins("JOIN surveys ON surveys.id = questions.survey_id").
		Where("questions.type = ?", dbm.QuestionTypeRating).
		Where("surveys.company_id = ?", companyID).
		Where("survey_responses.submitted_at >= ?", since).
		Where("survey_answers.value_number IS NOT NULL").
		Pluck("survey_answers.value_number", &values).Error
	return values, err
}
