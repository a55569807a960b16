package db_models

const (
	RoleAdmin      = "admin"
	RoleConsultant = "consultant"
)

type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:consultant" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}
