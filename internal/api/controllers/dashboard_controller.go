package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulso/internal/services"
	"pulso/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	tenantService    services.TenantServiceInterface
}

func NewDashboardController(dashboardService services.DashboardService, tenantService services.TenantServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, tenantService: tenantService}
}

// GetClimateReport godoc
// @Summary Climate metrics for the caller's tenant
// @Description Participation rate, NPS and satisfaction over a trailing window
// @Tags Dashboard
// @Produce json
// @Param days query int false "Trailing window in days: 7, 30 or 90" default(30)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (d *DashboardController) GetClimateReport(c *gin.Context) {
	tenant, ok := requireTenant(c, d.tenantService)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		utils.RespondError(c, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	report, err := d.dashboardService.BuildReport(c.Request.Context(), tenant.ID, days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard metrics computed")
}
