package utils

import "errors"

var (
	ErrSurveyNotFound    = errors.New("survey not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrSurveyInactive    = errors.New("survey is not accepting responses")
	ErrSurveyClosed      = errors.New("survey is closed")
	ErrUnknownRespondent = errors.New("email not found among this company's employees")
	ErrAlreadyResponded  = errors.New("employee has already responded to this survey")

	ErrTitleRequired     = errors.New("title is required")
	ErrFullNameRequired  = errors.New("full name is required")
	ErrEmailRequired     = errors.New("email is required for identification")
	ErrQuestionsRequired = errors.New("survey needs at least one question")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")

	ErrInvalidQuestionType = errors.New("invalid question type")
	ErrInvalidQuestionID   = errors.New("invalid question id in submission")
	ErrInvalidRatingValue  = errors.New("rating answer must be an integer")

	ErrDatabaseError = errors.New("database error")
)
