package repositories

import (
	"context"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type IHistoryRepository interface {
	Insert(ctx context.Context, entry *db_models.HistoryEntry) error
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.HistoryEntry, error)
}

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) IHistoryRepository {
	return &HistoryRepository{db: db}
}

func (r HistoryRepository) Insert(ctx context.Context, entry *db_models.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r HistoryRepository) ListByCustomer(ctx context.Context, customerID string) ([]db_models.HistoryEntry, error) {

	var entries []db_models.HistoryEntry
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
