package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulso/internal/models/request_models"
	"pulso/internal/services"
	"pulso/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
	tenantService services.TenantServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface, tenantService services.TenantServiceInterface) *SurveyController {
	return &SurveyController{surveyService: surveyService, tenantService: tenantService}
}

// CreateSurvey godoc
// @Summary Create a survey with its questions
// @Description New surveys start as DRAFT and must be activated before accepting responses
// @Tags Surveys
// @Accept json
// @Produce json
// @Param request body request_models.CreateSurveyRequest true "Survey payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys [post]
func (s *SurveyController) CreateSurvey(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	var req request_models.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	survey, err := s.surveyService.CreateSurvey(c.Request.Context(), tenant.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, survey, "Survey created successfully")
}

// ListSurveys godoc
// @Summary List the tenant's surveys
// @Tags Surveys
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys [get]
func (s *SurveyController) ListSurveys(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	surveys, err := s.surveyService.ListSurveys(c.Request.Context(), tenant.ID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, surveys, "Surveys fetched successfully")
}

// GetSurvey godoc
// @Summary Get one survey with its ordered questions
// @Tags Surveys
// @Param id path string true "Survey id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{id} [get]
func (s *SurveyController) GetSurvey(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	survey, err := s.surveyService.GetSurvey(c.Request.Context(), tenant.ID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, survey, "Survey fetched successfully")
}

// ActivateSurvey godoc
// @Summary Activate a draft survey
// @Tags Surveys
// @Param id path string true "Survey id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{id}/activate [post]
func (s *SurveyController) ActivateSurvey(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.surveyService.ActivateSurvey(c.Request.Context(), tenant.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey activated")
}

// CloseSurvey godoc
// @Summary Close a survey permanently
// @Tags Surveys
// @Param id path string true "Survey id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{id}/close [post]
func (s *SurveyController) CloseSurvey(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.surveyService.CloseSurvey(c.Request.Context(), tenant.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey closed")
}

// DeleteSurvey godoc
// @Summary Delete a survey and its responses
// @Tags Surveys
// @Param id path string true "Survey id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /surveys/{id} [delete]
func (s *SurveyController) DeleteSurvey(c *gin.Context) {
	tenant, ok := requireTenant(c, s.tenantService)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.surveyService.DeleteSurvey(c.Request.Context(), tenant.ID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey deleted")
}
