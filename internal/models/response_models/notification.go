package response_models

// FollowupNotification is one entry of the stateless notification scan.
// It is derived on every poll and never persisted.
type FollowupNotification struct {
	ID                string `json:"id"` // "<planID>-<offset>-<kind>"
	PlanID            string `json:"plan_id"`
	CustomerID        string `json:"customer_id"`
	CustomerName      string `json:"customer_name"`
	ConsultantName    string `json:"consultant_name"`
	StatusName        string `json:"status_name"`
	OperationTypeID   string `json:"operation_type_id"`
	OperationTypeName string `json:"operation_type_name"`
	Date              string `json:"date"`
	Offset            int    `json:"offset"`
	Kind              string `json:"kind"`
	Expired           bool   `json:"expired"`
	Done              bool   `json:"done"`
	Note              string `json:"note"`
	Message           string `json:"message"`
}
