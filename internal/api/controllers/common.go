package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulso/internal/models/db_models"
	"pulso/internal/services"
	"pulso/pkg/utils"
)

// requireTenant resolves the caller's organization (set by the identity
// middleware) to a tenant, creating it on first access. Every dashboard
// handler goes through here, so no handler ever sees another tenant's
// data.
func requireTenant(c *gin.Context, tenants services.TenantServiceInterface) (*db_models.Tenant, bool) {
	orgID := c.GetString("org_id")
	if orgID == "" {
		utils.RespondError(c, http.StatusForbidden, "Organization selection required")
		return nil, false
	}

	tenant, err := tenants.ResolveTenant(c.Request.Context(), orgID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return tenant, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return 0, 0, false
	}

	return page, pageSize, true
}
