package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pulso/internal/models/db_models"
)

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Upsert(ctx context.Context, clerkOrgID, defaultName string) (*db_models.Tenant, error) {
	args := m.Called(ctx, clerkOrgID, defaultName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Tenant), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, employee *db_models.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee *db_models.Employee) (int64, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, id, companyID uuid.UUID) (*db_models.Employee, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, companyID uuid.UUID, email string) (*db_models.Employee, error) {
	args := m.Called(ctx, companyID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Employee, error) {
	args := m.Called(ctx, companyID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Employee), args.Error(1)
}

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) CreateSurveyWithQuestions(ctx context.Context, survey *db_models.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepository) FindSurveyByID(ctx context.Context, id uuid.UUID) (*db_models.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindSurveyScoped(ctx context.Context, id, companyID uuid.UUID) (*db_models.Survey, error) {
	args := m.Called(ctx, id, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Survey), args.Error(1)
}

func (m *MockSurveyRepository) ListSurveys(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Survey, error) {
	args := m.Called(ctx, companyID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Survey), args.Error(1)
}

func (m *MockSurveyRepository) UpdateSurveyStatus(ctx context.Context, id, companyID uuid.UUID, status db_models.SurveyStatus) (int64, error) {
	args := m.Called(ctx, id, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSurveyRepository) DeleteSurvey(ctx context.Context, id, companyID uuid.UUID) error {
	args := m.Called(ctx, id, companyID)
	return args.Error(0)
}

type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) ResponseExists(ctx context.Context, surveyID, employeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, surveyID, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResponseRepository) CreateResponseWithAnswers(ctx context.Context, response *db_models.SurveyResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountEmployees(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountDistinctRespondents(ctx context.Context, companyID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, companyID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) RatingValues(ctx context.Context, companyID uuid.UUID, since time.Time) ([]float64, error) {
	args := m.Called(ctx, companyID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// fakeReportCache is an in-memory stand-in for the redis-backed report
// cache, tracking which tenants were invalidated.
type fakeReportCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []uuid.UUID
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{data: make(map[string][]byte)}
}

func cacheKey(tenantID uuid.UUID, windowDays int) string {
	return fmt.Sprintf("%s:%d", tenantID, windowDays)
}

func (f *fakeReportCache) Get(ctx context.Context, tenantID uuid.UUID, windowDays int, out interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.data[cacheKey(tenantID, windowDays)]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeReportCache) Set(ctx context.Context, tenantID uuid.UUID, windowDays int, report interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[cacheKey(tenantID, windowDays)] = payload
	return nil
}

func (f *fakeReportCache) InvalidateTenant(ctx context.Context, tenantID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, tenantID)
	for _, days := range []int{7, 30, 90} {
		delete(f.data, cacheKey(tenantID, days))
	}
	return nil
}
