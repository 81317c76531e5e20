package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
)

type EmployeeRepositoryInterface interface {
	CreateEmployee(ctx context.Context, employee *db_models.Employee) error
	UpdateEmployee(ctx context.Context, employee *db_models.Employee) (int64, error)
	DeleteEmployee(ctx context.Context, id, companyID uuid.UUID) error
	FindEmployeeByID(ctx context.Context, id, companyID uuid.UUID) (*db_models.Employee, error)
	FindEmployeeByEmail(ctx context.Context, companyID uuid.UUID, email string) (*db_models.Employee, error)
	ListEmployees(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Employee, error)
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *db_models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// UpdateEmployee is scoped by company so a foreign id updates nothing;
// the caller decides what zero affected rows means.
func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employee *db_models.Employee) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Employee{}).
		Where("id = ? AND company_id = ?", employee.ID, employee.CompanyID).
		Updates(map[string]interface{}{
			"full_name":  employee.FullName,
			"email":      employee.Email,
			"department": employee.Department,
		})
	return result.RowsAffected, result.Error
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id, companyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&db_models.Employee{}).Error
}

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, id, companyID uuid.UUID) (*db_models.Employee, error) {
	var employee db_models.Employee
	err := r.db.WithContext(ctx).
		First(&employee, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// FindEmployeeByEmail matches the stored email exactly; no case folding
// or trimming is applied to the stored value.
func (r *EmployeeRepository) FindEmployeeByEmail(ctx context.Context, companyID uuid.UUID, email string) (*db_models.Employee, error) {
	var employee db_models.Employee
	err := r.db.WithContext(ctx).
		First(&employee, "company_id = ? AND email = ?", companyID, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]db_models.Employee, error) {
	var employees []db_models.Employee
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}
