package employee_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pulso/internal/api/controllers"
	"pulso/internal/repositories"
	"pulso/internal/services"
)

var Module = fx.Provide(
	provideEmployeeRepo, provideEmployeeService, provideEmployeeController,
)

func provideEmployeeRepo(db *gorm.DB) repositories.EmployeeRepositoryInterface {
	return repositories.NewEmployeeRepository(db)
}

func provideEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface) services.EmployeeServiceInterface {
	return services.NewEmployeeService(employeeRepo)
}

func provideEmployeeController(employeeService services.EmployeeServiceInterface, tenantService services.TenantServiceInterface) *controllers.EmployeeController {
	return controllers.NewEmployeeController(employeeService, tenantService)
}
