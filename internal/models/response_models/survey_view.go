package response_models

import "github.com/google/uuid"

type QuestionView struct {
	ID    uuid.UUID `json:"id"`
	Text  string    `json:"text"`
	Type  string    `json:"type"`
	Order int       `json:"order"`
}

// PublicSurveyView is what the anonymous submission surface renders:
// survey and company labels plus the ordered question list.
type PublicSurveyView struct {
	ID          uuid.UUID      `json:"id"`
	CompanyName string         `json:"company_name"`
	Title       string         `json:"title"`
	Questions   []QuestionView `json:"questions"`
}

