package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
)

type SurveyRepository interface {
	CreateSurveyWithQuestions(ctx context.Context, survey *db_models.Survey) error
	FindSurveyByID(ctx context.Context, id uuid.UUID) (*db_models.Survey, error)
	FindSurveyScoped(ctx context.Context, id, companyID uuid.UUID) (*db_models.Survey, error)
	ListSurveys(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Survey, error)
	UpdateSurveyStatus(ctx context.Context, id, companyID uuid.UUID, status db_models.SurveyStatus) (int64, error)
	DeleteSurvey(ctx context.Context, id, companyID uuid.UUID) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

// CreateSurveyWithQuestions inserts the survey row and its question rows
// in one transaction; a partially created survey is never visible.
func (r *surveyRepository) CreateSurveyWithQuestions(ctx context.Context, survey *db_models.Survey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(survey).Error
	})
}

// FindSurveyByID is deliberately unscoped: the public submission surface
// resolves surveys by bare id.
func (r *surveyRepository) FindSurveyByID(ctx context.Context, id uuid.UUID) (*db_models.Survey, error) {
	var survey db_models.Survey
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&survey, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindSurveyScoped(ctx context.Context, id, companyID uuid.UUID) (*db_models.Survey, error) {
	var survey db_models.Survey
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&survey, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) ListSurveys(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Survey, error) {
	var surveys []db_models.Survey
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&surveys).Error
	return surveys, err
}

func (r *surveyRepository) UpdateSurveyStatus(ctx context.Context, id, companyID uuid.UUID, status db_models.SurveyStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Survey{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *surveyRepository) DeleteSurvey(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&db_models.Survey{}).Error
}
