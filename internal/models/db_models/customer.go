package db_models

import (
	"github.com/google/uuid"
)

// Category marker for notes written by the follow-up engine, so they
// can be told apart from notes typed in by consultants.
const NoteCategoryOperationFollowup = "operation-followup"

type CustomerStatus struct {
	BaseModel
	Name        string `gorm:"uniqueIndex" json:"name"`
	DisplayName string `json:"display_name"`
}

type Customer struct {
	BaseModel
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	ConsultantID *uuid.UUID      `gorm:"type:uuid" json:"consultant_id"`
	Consultant   *User           `json:"consultant,omitempty"`
	StatusID     *uuid.UUID      `gorm:"type:uuid" json:"status_id"`
	Status       *CustomerStatus `json:"status,omitempty"`

	CreatorID uuid.UUID `gorm:"type:uuid" json:"creator_id"`
}

type CustomerNote struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Content    string    `json:"content"`
	Category   string    `gorm:"default:general" json:"category"`
	CreatorID  uuid.UUID `gorm:"type:uuid" json:"creator_id"`
}
