package repositories

import (
	"context"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type ICustomerNoteRepository interface {
	Insert(ctx context.Context, note *db_models.CustomerNote) error
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.CustomerNote, error)
}

type CustomerNoteRepository struct {
	db *gorm.DB
}

func NewCustomerNoteRepository(db *gorm.DB) ICustomerNoteRepository {
	return &CustomerNoteRepository{db: db}
}

func (r CustomerNoteRepository) Insert(ctx context.Context, note *db_models.CustomerNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r CustomerNoteRepository) ListByCustomer(ctx context.Context, customerID string) ([]db_models.CustomerNote, error) {

	var notes []db_models.CustomerNote
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
