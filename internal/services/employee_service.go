package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pulso/internal/models/db_models"
	"pulso/internal/models/request_models"
	"pulso/internal/repositories"
	"pulso/pkg/utils"
)

type EmployeeServiceInterface interface {
	AddEmployee(ctx context.Context, companyID uuid.UUID, req request_models.CreateEmployeeRequest) (*db_models.Employee, error)
	UpdateEmployee(ctx context.Context, companyID, id uuid.UUID, req request_models.UpdateEmployeeRequest) error
	RemoveEmployee(ctx context.Context, companyID, id uuid.UUID) error
	GetEmployee(ctx context.Context, companyID, id uuid.UUID) (*db_models.Employee, error)
	ListEmployees(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Employee, error)
}

type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface) EmployeeServiceInterface {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// optional trims the field and stores empty as null, so a blank form
// input never becomes an empty-string email.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func (s *EmployeeService) AddEmployee(ctx context.Context, companyID uuid.UUID, req request_models.CreateEmployeeRequest) (*db_models.Employee, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, utils.ErrFullNameRequired
	}

	employee := &db_models.Employee{
		CompanyID:  companyID,
		FullName:   fullName,
		Email:      optional(req.Email),
		Department: optional(req.Department),
	}

	if err := s.employeeRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, companyID, id uuid.UUID, req request_models.UpdateEmployeeRequest) error {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return utils.ErrFullNameRequired
	}

	employee := &db_models.Employee{
		FullName:   fullName,
		Email:      optional(req.Email),
		Department: optional(req.Department),
	}
	employee.ID = id
	employee.CompanyID = companyID

	affected, err := s.employeeRepo.UpdateEmployee(ctx, employee)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrEmployeeNotFound
	}
	return nil
}

// RemoveEmployee mirrors a scoped delete-many: removing an id that does
// not exist (or belongs to another tenant) succeeds silently.
func (s *EmployeeService) RemoveEmployee(ctx context.Context, companyID, id uuid.UUID) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, id, companyID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, companyID, id uuid.UUID) (*db_models.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, id, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if employee == nil {
		return nil, utils.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Employee, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, companyID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return employees, nil
}
