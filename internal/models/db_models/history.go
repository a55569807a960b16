package db_models

import (
	"github.com/google/uuid"
)

const (
	HistoryActionFollowupCompleted = "followup_completed"
	HistoryActionFollowupNote      = "followup_note"
)

// HistoryEntry is an immutable audit row. It references the plan that
// produced it but is not owned by it; entries survive plan deletion.
type HistoryEntry struct {
	BaseModel
	CustomerID  uuid.UUID  `gorm:"type:uuid;index" json:"customer_id"`
	PlanID      *uuid.UUID `gorm:"type:uuid;index" json:"plan_id"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	CreatorID   uuid.UUID  `gorm:"type:uuid" json:"creator_id"`
}
