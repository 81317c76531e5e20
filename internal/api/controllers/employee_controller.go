package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulso/internal/models/request_models"
	"pulso/internal/services"
	"pulso/pkg/utils"
)

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	tenantService   services.TenantServiceInterface
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, tenantService services.TenantServiceInterface) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, tenantService: tenantService}
}

// CreateEmployee godoc
// @Summary Add an employee to the roster
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body request_models.CreateEmployeeRequest true "Employee payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /employees [post]
func (e *EmployeeController) CreateEmployee(c *gin.Context) {
	tenant, ok := requireTenant(c, e.tenantService)
	if !ok {
		return
	}

	var req request_models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	employee, err := e.employeeService.AddEmployee(c.Request.Context(), tenant.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, employee, "Employee created successfully")
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags Employees
// @Param id path string true "Employee id"
// @Param request body request_models.UpdateEmployeeRequest true "Employee payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (e *EmployeeController) UpdateEmployee(c *gin.Context) {
	tenant, ok := requireTenant(c, e.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := e.employeeService.UpdateEmployee(c.Request.Context(), tenant.ID, id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Employee updated successfully")
}

// DeleteEmployee godoc
// @Summary Remove an employee
// @Tags Employees
// @Param id path string true "Employee id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (e *EmployeeController) DeleteEmployee(c *gin.Context) {
	tenant, ok := requireTenant(c, e.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := e.employeeService.RemoveEmployee(c.Request.Context(), tenant.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Employee removed successfully")
}

// GetEmployee godoc
// @Summary Get one employee
// @Tags Employees
// @Param id path string true "Employee id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (e *EmployeeController) GetEmployee(c *gin.Context) {
	tenant, ok := requireTenant(c, e.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := e.employeeService.GetEmployee(c.Request.Context(), tenant.ID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, employee, "Employee fetched successfully")
}

// ListEmployees godoc
// @Summary List the tenant's roster
// @Tags Employees
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /employees [get]
func (e *EmployeeController) ListEmployees(c *gin.Context) {
	tenant, ok := requireTenant(c, e.tenantService)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	employees, err := e.employeeService.ListEmployees(c.Request.Context(), tenant.ID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, employees, "Employees fetched successfully")
}
