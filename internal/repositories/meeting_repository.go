package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type IMeetingRepository interface {
	Insert(ctx context.Context, meeting *db_models.Meeting) error
	GetByID(ctx context.Context, id string) (*db_models.Meeting, error)
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.Meeting, error)
	UpdateStatus(ctx context.Context, id string, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) IMeetingRepository {
	return &MeetingRepository{db: db}
}

func (r MeetingRepository) Insert(ctx context.Context, meeting *db_models.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r MeetingRepository) GetByID(ctx context.Context, id string) (*db_models.Meeting, error) {

	var meeting db_models.Meeting
	err := r.db.WithContext(ctx).First(&meeting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r MeetingRepository) ListByCustomer(ctx context.Context, customerID string) ([]db_models.Meeting, error) {

	var meetings []db_models.Meeting
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("scheduled_at asc").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r MeetingRepository) UpdateStatus(ctx context.Context, id string, status string) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&db_models.Meeting{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r MeetingRepository) Delete(ctx context.Context, id string) (int64, error) {

	res := r.db.WithContext(ctx).Delete(&db_models.Meeting{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
