package request_models

type QuestionInput struct {
	Text string `json:"text" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type CreateSurveyRequest struct {
	Title     string          `json:"title" binding:"required"`
	Questions []QuestionInput `json:"questions"`
}
