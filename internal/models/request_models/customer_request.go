package request_models

type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	// at least one of Phone/Email is required; checked in the service
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	ConsultantID string `json:"consultant_id" binding:"omitempty,uuid4"`
	StatusID     string `json:"status_id" binding:"omitempty,uuid4"`
}

type CreateCustomerNoteRequest struct {
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type CreateCustomerStatusRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}
