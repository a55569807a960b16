package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinicrm/internal/models/db_models"
)

type IFollowupPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.FollowupPlan) error
	GetByID(ctx context.Context, id string) (*db_models.FollowupPlan, error)
	ListByCustomer(ctx context.Context, customerID string) ([]db_models.FollowupPlan, error)
	ListAll(ctx context.Context) ([]db_models.FollowupPlan, error)
	Delete(ctx context.Context, id string) (int64, error)
	SaveWithSideEffects(ctx context.Context, plan *db_models.FollowupPlan, history *db_models.HistoryEntry, note *db_models.CustomerNote) error
}

type FollowupPlanRepository struct {
	db *gorm.DB
}

func NewFollowupPlanRepository(db *gorm.DB) IFollowupPlanRepository {
	return &FollowupPlanRepository{db: db}
}

func (r FollowupPlanRepository) Insert(ctx context.Context, plan *db_models.FollowupPlan) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(plan).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r FollowupPlanRepository) GetByID(ctx context.Context, id string) (*db_models.FollowupPlan, error) {

	var plan db_models.FollowupPlan
	err := r.db.WithContext(ctx).
		Preload("OperationType").
		Preload("Customer").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r FollowupPlanRepository) ListByCustomer(ctx context.Context, customerID string) ([]db_models.FollowupPlan, error) {

	var plans []db_models.FollowupPlan
	err := r.db.WithContext(ctx).
		Preload("OperationType").
		Preload("Customer").
		Where("customer_id = ?", customerID).
		Order("scheduled_at asc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListAll feeds the notification scan; customer context (consultant,
// status) and operation type come preloaded so the scan stays a single
// read pass.
func (r FollowupPlanRepository) ListAll(ctx context.Context) ([]db_models.FollowupPlan, error) {

	var plans []db_models.FollowupPlan
	err := r.db.WithContext(ctx).
		Preload("OperationType").
		Preload("Customer").
		Preload("Customer.Consultant").
		Preload("Customer.Status").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r FollowupPlanRepository) Delete(ctx context.Context, id string) (int64, error) {

	res := r.db.WithContext(ctx).Unscoped().Delete(&db_models.FollowupPlan{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// SaveWithSideEffects rewrites the whole followups blob and, in the
// same transaction, appends the audit entry and customer note the item
// update fanned out. history and note may be nil when no side effect
// fired.
func (r FollowupPlanRepository) SaveWithSideEffects(ctx context.Context, plan *db_models.FollowupPlan, history *db_models.HistoryEntry, note *db_models.CustomerNote) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Omit(clause.Associations).Save(plan).Error; err != nil {
			return err
		}
		if history != nil {
			if err := tx.WithContext(ctx).Create(history).Error; err != nil {
				return err
			}
		}
		if note != nil {
			if err := tx.WithContext(ctx).Create(note).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
