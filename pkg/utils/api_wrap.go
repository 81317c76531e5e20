package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP codes.
// Cross-tenant access surfaces as not-found, never as a distinct
// authorization error.
func HandleServiceError(c *gin.Context, err error) {
	var code int

	switch {
	case errors.Is(err, ErrSurveyNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrUnknownRespondent):
		code = http.StatusNotFound

	case errors.Is(err, ErrSurveyInactive),
		errors.Is(err, ErrSurveyClosed),
		errors.Is(err, ErrAlreadyResponded):
		code = http.StatusConflict

	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrFullNameRequired),
		errors.Is(err, ErrEmailRequired),
		errors.Is(err, ErrQuestionsRequired),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrInvalidQuestionType),
		errors.Is(err, ErrInvalidQuestionID),
		errors.Is(err, ErrInvalidRatingValue):
		code = http.StatusBadRequest

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
		return

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondError(c, code, err.Error())
}
