package request_models

// SubmittedField is one raw form field pair from the public survey form:
// the value from q_<questionID> and the caller-declared tag from
// type_<questionID>.
type SubmittedField struct {
	QuestionID string
	Value      string
	TypeTag    string
}
