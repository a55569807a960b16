package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MeetingStatusPlanned   = "planned"
	MeetingStatusDone      = "done"
	MeetingStatusCancelled = "cancelled"
)

type Meeting struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Customer    *Customer `json:"customer,omitempty"`
	UserID      uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	Status      string    `gorm:"default:planned" json:"status"`
}
