package response_models

type CustomerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	ConsultantName string `json:"consultant_name,omitempty"`
	StatusName     string `json:"status_name,omitempty"`
}
