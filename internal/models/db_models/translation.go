package db_models

import (
	"github.com/google/uuid"
)

type Language struct {
	BaseModel
	Code      string `gorm:"uniqueIndex;size:5" json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}

type Translation struct {
	BaseModel
	LanguageID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_translations_language_key" json:"language_id"`
	Language   *Language `json:"language,omitempty"`
	Key        string    `gorm:"uniqueIndex:idx_translations_language_key" json:"key"`
	Value      string    `json:"value"`
}
