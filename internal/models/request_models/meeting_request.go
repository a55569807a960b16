package request_models

type CreateMeetingRequest struct {
	CustomerID  string `json:"customer_id" binding:"required,uuid4"`
	Title       string `json:"title" binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned done cancelled"`
}
