package request_models

type CreateOperationTypeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

type FollowupOffset struct {
	Offset int `json:"offset" binding:"min=0"`
}

type FollowupOffsets struct {
	Days   []FollowupOffset `json:"days"`
	Months []FollowupOffset `json:"months"`
}

type SchedulePlanRequest struct {
	CustomerID      string           `json:"customer_id" binding:"required,uuid4"`
	OperationTypeID string           `json:"operation_type_id" binding:"required,uuid4"`
	ScheduledAt     string           `json:"scheduled_at" binding:"required"`
	Followups       *FollowupOffsets `json:"followups"`
}

type UpdateFollowupItemRequest struct {
	Kind   string  `json:"kind" binding:"required,oneof=day month"`
	Offset int     `json:"offset" binding:"min=0"`
	Done   *bool   `json:"done"`
	Note   *string `json:"note"`
}
