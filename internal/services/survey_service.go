package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pulso/internal/models/db_models"
	"pulso/internal/models/request_models"
	"pulso/internal/models/response_models"
	"pulso/internal/repositories"
	"pulso/pkg/utils"
)

type SurveyServiceInterface interface {
	CreateSurvey(ctx context.Context, companyID uuid.UUID, req request_models.CreateSurveyRequest) (*db_models.Survey, error)
	GetSurvey(ctx context.Context, companyID, id uuid.UUID) (*db_models.Survey, error)
	ListSurveys(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Survey, error)
	ActivateSurvey(ctx context.Context, companyID, id uuid.UUID) error
	CloseSurvey(ctx context.Context, companyID, id uuid.UUID) error
	DeleteSurvey(ctx context.Context, companyID, id uuid.UUID) error
	GetPublicSurvey(ctx context.Context, id uuid.UUID) (*response_models.PublicSurveyView, error)
}

type SurveyService struct {
	surveyRepo repositories.SurveyRepository
	tenantRepo repositories.TenantRepository
}

func NewSurveyService(surveyRepo repositories.SurveyRepository, tenantRepo repositories.TenantRepository) SurveyServiceInterface {
	return &SurveyService{surveyRepo: surveyRepo, tenantRepo: tenantRepo}
}

func parseQuestionType(raw string) (db_models.QuestionType, error) {
	switch db_models.QuestionType(strings.ToUpper(strings.TrimSpace(raw))) {
	case db_models.QuestionTypeRating:
		return db_models.QuestionTypeRating, nil
	case db_models.QuestionTypeBoolean:
		return db_models.QuestionTypeBoolean, nil
	case db_models.QuestionTypeText:
		return db_models.QuestionTypeText, nil
	default:
		return "", utils.ErrInvalidQuestionType
	}
}

// CreateSurvey persists a new survey as DRAFT with its questions ordered
// 1..N from the submitted sequence. Going live requires an explicit
// activation.
func (s *SurveyService) CreateSurvey(ctx context.Context, companyID uuid.UUID, req request_models.CreateSurveyRequest) (*db_models.Survey, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.ErrTitleRequired
	}
	if len(req.Questions) == 0 {
		return nil, utils.ErrQuestionsRequired
	}

	questions := make([]db_models.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		qType, err := parseQuestionType(q.Type)
		if err != nil {
			return nil, err
		}
		questions = append(questions, db_models.Question{
			Text:  strings.TrimSpace(q.Text),
			Type:  qType,
			Order: i + 1,
		})
	}

	survey := &db_models.Survey{
		CompanyID: companyID,
		Title:     title,
		Status:    db_models.SurveyStatusDraft,
		Questions: questions,
	}

	if err := s.surveyRepo.CreateSurveyWithQuestions(ctx, survey); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return survey, nil
}

func (s *SurveyService) GetSurvey(ctx context.Context, companyID, id uuid.UUID) (*db_models.Survey, error) {
	survey, err := s.surveyRepo.FindSurveyScoped(ctx, id, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if survey == nil {
		return nil, utils.ErrSurveyNotFound
	}
	return survey, nil
}

func (s *SurveyService) ListSurveys(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Survey, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	surveys, err := s.surveyRepo.ListSurveys(ctx, companyID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return surveys, nil
}

// ActivateSurvey moves DRAFT to ACTIVE. Activating an already-active
// survey is a no-op; a closed survey stays closed.
func (s *SurveyService) ActivateSurvey(ctx context.Context, companyID, id uuid.UUID) error {
	survey, err := s.surveyRepo.FindSurveyScoped(ctx, id, companyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if survey == nil {
		return utils.ErrSurveyNotFound
	}

	switch survey.Status {
	case db_models.SurveyStatusActive:
		return nil
	case db_models.SurveyStatusClosed:
		return utils.ErrSurveyClosed
	}

	if _, err := s.surveyRepo.UpdateSurveyStatus(ctx, id, companyID, db_models.SurveyStatusActive); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// CloseSurvey is one-way and idempotent; there is no reopening.
func (s *SurveyService) CloseSurvey(ctx context.Context, companyID, id uuid.UUID) error {
	survey, err := s.surveyRepo.FindSurveyScoped(ctx, id, companyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if survey == nil {
		return utils.ErrSurveyNotFound
	}
	if survey.Status == db_models.SurveyStatusClosed {
		return nil
	}

	if _, err := s.surveyRepo.UpdateSurveyStatus(ctx, id, companyID, db_models.SurveyStatusClosed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SurveyService) DeleteSurvey(ctx context.Context, companyID, id uuid.UUID) error {
	if err := s.surveyRepo.DeleteSurvey(ctx, id, companyID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// GetPublicSurvey builds the anonymous submission view. Only ACTIVE
// surveys are served; draft and closed ones report unavailable without
// revealing which.
func (s *SurveyService) GetPublicSurvey(ctx context.Context, id uuid.UUID) (*response_models.PublicSurveyView, error) {
	survey, err := s.surveyRepo.FindSurveyByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if survey == nil {
		return nil, utils.ErrSurveyNotFound
	}
	if survey.Status != db_models.SurveyStatusActive {
		return nil, utils.ErrSurveyInactive
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, survey.CompanyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := &response_models.PublicSurveyView{
		ID:    survey.ID,
		Title: survey.Title,
	}
	if tenant != nil {
		view.CompanyName = tenant.Name
	}
	for _, q := range survey.Questions {
		view.Questions = append(view.Questions, response_models.QuestionView{
			ID:    q.ID,
			Text:  q.Text,
			Type:  string(q.Type),
			Order: q.Order,
		})
	}
	return view, nil
}
