package response_models

import (
	"clinicrm/internal/models/db_models"
)

type OperationTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type PlanResponse struct {
	ID                string                `json:"id"`
	CustomerID        string                `json:"customer_id"`
	CustomerName      string                `json:"customer_name,omitempty"`
	OperationTypeID   string                `json:"operation_type_id"`
	OperationTypeName string                `json:"operation_type_name,omitempty"`
	ScheduledAt       string                `json:"scheduled_at"`
	Followups         db_models.FollowupSet `json:"followups"`
	Done              bool                  `json:"done"`
}
