package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
	"pulso/internal/models/request_models"
	"pulso/internal/repositories"
	"pulso/pkg/cache"
	"pulso/pkg/utils"
)

type SubmissionServiceInterface interface {
	SubmitSurvey(ctx context.Context, surveyID uuid.UUID, email string, fields []request_models.SubmittedField) error
}

type SubmissionService struct {
	surveyRepo   repositories.SurveyRepository
	employeeRepo repositories.EmployeeRepositoryInterface
	responseRepo repositories.ResponseRepositoryInterface
	reportCache  cache.ReportCache
	logger       *zap.Logger
}

func NewSubmissionService(
	surveyRepo repositories.SurveyRepository,
	employeeRepo repositories.EmployeeRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	reportCache cache.ReportCache,
	logger *zap.Logger,
) SubmissionServiceInterface {
	return &SubmissionService{
		surveyRepo:   surveyRepo,
		employeeRepo: employeeRepo,
		responseRepo: responseRepo,
		reportCache:  reportCache,
		logger:       logger,
	}
}

// SubmitSurvey records one respondent's full answer set, or fails with
// no rows written. The respondent is identified by exact email match
// within the survey's tenant. The answer slot is chosen by the
// caller-declared type tag that arrives with each field; the tag is not
// re-checked against the stored question type.
func (s *SubmissionService) SubmitSurvey(ctx context.Context, surveyID uuid.UUID, email string, fields []request_models.SubmittedField) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return utils.ErrEmailRequired
	}

	survey, err := s.surveyRepo.FindSurveyByID(ctx, surveyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if survey == nil {
		return utils.ErrSurveyNotFound
	}
	if survey.Status != db_models.SurveyStatusActive {
		return utils.ErrSurveyInactive
	}

	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, survey.CompanyID, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if employee == nil {
		return utils.ErrUnknownRespondent
	}

	alreadyResponded, err := s.responseRepo.ResponseExists(ctx, surveyID, employee.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if alreadyResponded {
		return utils.ErrAlreadyResponded
	}

	answers := make([]db_models.SurveyAnswer, 0, len(fields))
	for _, field := range fields {
		questionID, err := uuid.Parse(field.QuestionID)
		if err != nil {
			return utils.ErrInvalidQuestionID
		}

		answer := db_models.SurveyAnswer{QuestionID: questionID}
		raw := strings.TrimSpace(field.Value)

		switch field.TypeTag {
		case string(db_models.QuestionTypeRating):
			n, err := strconv.Atoi(raw)
			if err != nil {
				return utils.ErrInvalidRatingValue
			}
			value := float64(n)
			answer.ValueNumber = &value
		case string(db_models.QuestionTypeBoolean):
			value := raw == "true"
			answer.ValueBoolean = &value
		default:
			answer.ValueString = &raw
		}

		answers = append(answers, answer)
	}

	response := &db_models.SurveyResponse{
		SurveyID:    surveyID,
		EmployeeID:  employee.ID,
		SubmittedAt: time.Now().UTC(),
		Answers:     answers,
	}

	if err := s.responseRepo.CreateResponseWithAnswers(ctx, response); err != nil {
		// A concurrent duplicate that passed the existence check dies on
		// the (survey, employee) unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrAlreadyResponded
		}
		return utils.ErrDatabaseError
	}

	s.logger.Info("survey response recorded",
		zap.String("survey_id", surveyID.String()),
		zap.String("employee_id", employee.ID.String()),
		zap.Int("answers", len(answers)))

	// Stale metrics are tolerable; a failed invalidation must not undo a
	// recorded response.
	if err := s.reportCache.InvalidateTenant(ctx, survey.CompanyID); err != nil {
		s.logger.Warn("dashboard cache invalidation failed",
			zap.String("company_id", survey.CompanyID.String()), zap.Error(err))
	}

	return nil
}
