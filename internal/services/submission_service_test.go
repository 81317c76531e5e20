package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
	"pulso/internal/models/request_models"
	"pulso/pkg/utils"
)

type submissionFixture struct {
	surveyRepo   *MockSurveyRepository
	employeeRepo *MockEmployeeRepository
	responseRepo *MockResponseRepository
	reportCache  *fakeReportCache
	svc          SubmissionServiceInterface

	companyID  uuid.UUID
	surveyID   uuid.UUID
	employeeID uuid.UUID
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		surveyRepo:   new(MockSurveyRepository),
		employeeRepo: new(MockEmployeeRepository),
		responseRepo: new(MockResponseRepository),
		reportCache:  newFakeReportCache(),
		companyID:    uuid.New(),
		surveyID:     uuid.New(),
		employeeID:   uuid.New(),
	}
	f.svc = NewSubmissionService(f.surveyRepo, f.employeeRepo, f.responseRepo, f.reportCache, zap.NewNop())
	return f
}

func (f *submissionFixture) survey(status db_models.SurveyStatus) *db_models.Survey {
	survey := &db_models.Survey{CompanyID: f.companyID, Title: "Clima", Status: status}
	survey.ID = f.surveyID
	return survey
}

func (f *submissionFixture) employee() *db_models.Employee {
	email := "ana@empresa.com"
	employee := &db_models.Employee{CompanyID: f.companyID, FullName: "Ana", Email: &email}
	employee.ID = f.employeeID
	return employee
}

func TestSubmitSurveyNotFound(t *testing.T) {
	f := newSubmissionFixture()
	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(nil, nil)

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", nil)
	assert.ErrorIs(t, err, utils.ErrSurveyNotFound)
}

func TestSubmitSurveyRejectsNonActive(t *testing.T) {
	for _, status := range []db_models.SurveyStatus{db_models.SurveyStatusDraft, db_models.SurveyStatusClosed} {
		t.Run(string(status), func(t *testing.T) {
			f := newSubmissionFixture()
			f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(status), nil)

			err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", nil)
			assert.ErrorIs(t, err, utils.ErrSurveyInactive)
			f.responseRepo.AssertNotCalled(t, "CreateResponseWithAnswers", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitSurveyRequiresEmail(t *testing.T) {
	f := newSubmissionFixture()

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "   ", nil)
	assert.ErrorIs(t, err, utils.ErrEmailRequired)
}

func TestSubmitSurveyUnknownRespondent(t *testing.T) {
	f := newSubmissionFixture()
	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "intruso@fora.com").Return(nil, nil)

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "intruso@fora.com", nil)
	assert.ErrorIs(t, err, utils.ErrUnknownRespondent)
	f.responseRepo.AssertNotCalled(t, "CreateResponseWithAnswers", mock.Anything, mock.Anything)
}

func TestSubmitSurveyAlreadyResponded(t *testing.T) {
	f := newSubmissionFixture()
	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(true, nil)

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", nil)
	assert.ErrorIs(t, err, utils.ErrAlreadyResponded)
	f.responseRepo.AssertNotCalled(t, "CreateResponseWithAnswers", mock.Anything, mock.Anything)
}

func TestSubmitSurveyConcurrentDuplicate(t *testing.T) {
	f := newSubmissionFixture()
	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(false, nil)
	f.responseRepo.On("CreateResponseWithAnswers", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", nil)
	assert.ErrorIs(t, err, utils.ErrAlreadyResponded)
}

func TestSubmitSurveyBuildsTypedAnswers(t *testing.T) {
	f := newSubmissionFixture()
	ratingQ := uuid.New()
	boolQ := uuid.New()
	textQ := uuid.New()

	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(false, nil)

	var captured *db_models.SurveyResponse
	f.responseRepo.On("CreateResponseWithAnswers", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*db_models.SurveyResponse)
		}).
		Return(nil)

	fields := []request_models.SubmittedField{
		{QuestionID: ratingQ.String(), Value: "9", TypeTag: "RATING"},
		{QuestionID: boolQ.String(), Value: "true", TypeTag: "BOOLEAN"},
		{QuestionID: textQ.String(), Value: "  mais pausas  ", TypeTag: "TEXT"},
	}

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", fields)
	require.NoError(t, err)
	require.NotNil(t, captured)
	require.Len(t, captured.Answers, 3)

	assert.Equal(t, f.surveyID, captured.SurveyID)
	assert.Equal(t, f.employeeID, captured.EmployeeID)
	assert.False(t, captured.SubmittedAt.IsZero())

	byQuestion := make(map[uuid.UUID]db_models.SurveyAnswer)
	for _, a := range captured.Answers {
		byQuestion[a.QuestionID] = a
	}

	rating := byQuestion[ratingQ]
	require.NotNil(t, rating.ValueNumber)
	assert.Equal(t, 9.0, *rating.ValueNumber)
	assert.Nil(t, rating.ValueString)
	assert.Nil(t, rating.ValueBoolean)

	boolean := byQuestion[boolQ]
	require.NotNil(t, boolean.ValueBoolean)
	assert.True(t, *boolean.ValueBoolean)
	assert.Nil(t, boolean.ValueNumber)

	text := byQuestion[textQ]
	require.NotNil(t, text.ValueString)
	assert.Equal(t, "mais pausas", *text.ValueString)

	// Successful submission invalidates the tenant's cached reports.
	require.Len(t, f.reportCache.invalidated, 1)
	assert.Equal(t, f.companyID, f.reportCache.invalidated[0])
}

func TestSubmitSurveyBooleanLiteralComparison(t *testing.T) {
	f := newSubmissionFixture()
	boolQ := uuid.New()

	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(false, nil)

	var captured *db_models.SurveyResponse
	f.responseRepo.On("CreateResponseWithAnswers", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*db_models.SurveyResponse)
		}).
		Return(nil)

	// Anything other than the literal "true" is false.
	fields := []request_models.SubmittedField{
		{QuestionID: boolQ.String(), Value: "yes", TypeTag: "BOOLEAN"},
	}

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", fields)
	require.NoError(t, err)
	require.NotNil(t, captured.Answers[0].ValueBoolean)
	assert.False(t, *captured.Answers[0].ValueBoolean)
}

func TestSubmitSurveyInvalidRating(t *testing.T) {
	f := newSubmissionFixture()
	ratingQ := uuid.New()

	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(false, nil)

	fields := []request_models.SubmittedField{
		{QuestionID: ratingQ.String(), Value: "dez", TypeTag: "RATING"},
	}

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", fields)
	assert.ErrorIs(t, err, utils.ErrInvalidRatingValue)
	f.responseRepo.AssertNotCalled(t, "CreateResponseWithAnswers", mock.Anything, mock.Anything)
}

func TestSubmitSurveyInvalidQuestionID(t *testing.T) {
	f := newSubmissionFixture()

	f.surveyRepo.On("FindSurveyByID", mock.Anything, f.surveyID).Return(f.survey(db_models.SurveyStatusActive), nil)
	f.employeeRepo.On("FindEmployeeByEmail", mock.Anything, f.companyID, "ana@empresa.com").Return(f.employee(), nil)
	f.responseRepo.On("ResponseExists", mock.Anything, f.surveyID, f.employeeID).Return(false, nil)

	fields := []request_models.SubmittedField{
		{QuestionID: "not-a-uuid", Value: "9", TypeTag: "RATING"},
	}

	err := f.svc.SubmitSurvey(context.Background(), f.surveyID, "ana@empresa.com", fields)
	assert.ErrorIs(t, err, utils.ErrInvalidQuestionID)
}
