package request_models

type CreateEmployeeRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
