package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulso/internal/models/request_models"
	"pulso/internal/services"
	"pulso/pkg/utils"
)

// SubmissionController serves the anonymous response surface. No
// identity middleware runs here; respondents are identified by the
// email they type into the form.
type SubmissionController struct {
	surveyService     services.SurveyServiceInterface
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(surveyService services.SurveyServiceInterface, submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{surveyService: surveyService, submissionService: submissionService}
}

// GetPublicSurvey godoc
// @Summary Fetch an active survey for the public form
// @Tags Public
// @Param id path string true "Survey id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /survey/{id} [get]
func (s *SubmissionController) GetPublicSurvey(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := s.surveyService.GetPublicSurvey(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Survey fetched successfully")
}

// collectFields pulls the q_<questionID> value fields and their
// type_<questionID> companions out of the submitted form.
func collectFields(c *gin.Context) []request_models.SubmittedField {
	var fields []request_models.SubmittedField
	for key, values := range c.Request.PostForm {
		if !strings.HasPrefix(key, "q_") || len(values) == 0 {
			continue
		}
		questionID := strings.TrimPrefix(key, "q_")
		fields = append(fields, request_models.SubmittedField{
			QuestionID: questionID,
			Value:      values[0],
			TypeTag:    c.PostForm("type_" + questionID),
		})
	}
	return fields
}

// SubmitSurvey godoc
// @Summary Submit one employee's answers for a survey
// @Description Form fields: email, plus q_<questionID> and type_<questionID> per question
// @Tags Public
// @Accept x-www-form-urlencoded
// @Param id path string true "Survey id"
// @Success 303 {string} string "Redirect to the thank-you view"
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /survey/{id} [post]
func (s *SubmissionController) SubmitSurvey(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	email := c.PostForm("email")
	fields := collectFields(c)

	if err := s.submissionService.SubmitSurvey(c.Request.Context(), id, email, fields); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/survey/"+id.String()+"/thank-you")
}
