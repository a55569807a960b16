package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	FollowupKindDay   = "day"
	FollowupKindMonth = "month"
)

type OperationType struct {
	BaseModel
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   uuid.UUID `gorm:"type:uuid" json:"creator_id"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

// FollowupItem lives inside the plan's jsonb blob, not in its own row.
// Offset and Kind are fixed at plan creation; only Done and Note
// change afterwards.
type FollowupItem struct {
	Offset int    `json:"offset"`
	Date   string `json:"date"`
	Done   bool   `json:"done"`
	Note   string `json:"note"`
	Kind   string `json:"kind"`
}

type FollowupSet struct {
	Days   []FollowupItem `json:"days"`
	Months []FollowupItem `json:"months"`
}

type FollowupPlan struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`

	OperationTypeID uuid.UUID      `gorm:"type:uuid;index" json:"operation_type_id"`
	OperationType   *OperationType `json:"operation_type,omitempty"`

	ScheduledAt time.Time                       `json:"scheduled_at"`
	Followups   datatypes.JSONType[FollowupSet] `gorm:"type:jsonb" json:"followups"`
	Done        bool                            `gorm:"default:false" json:"done"`
	CreatorID   uuid.UUID                       `gorm:"type:uuid" json:"creator_id"`
}
