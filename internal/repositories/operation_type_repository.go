package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type IOperationTypeRepository interface {
	Insert(ctx context.Context, opType *db_models.OperationType) error
	GetByID(ctx context.Context, id string) (*db_models.OperationType, error)
	ListAll(ctx context.Context) ([]db_models.OperationType, error)
}

type OperationTypeRepository struct {
	db *gorm.DB
}

func NewOperationTypeRepository(db *gorm.DB) IOperationTypeRepository {
	return &OperationTypeRepository{db: db}
}

func (r OperationTypeRepository) Insert(ctx context.Context, opType *db_models.OperationType) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(opType).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r OperationTypeRepository) GetByID(ctx context.Context, id string) (*db_models.OperationType, error) {

	var opType db_models.OperationType
	err := r.db.WithContext(ctx).First(&opType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opType, nil
}

func (r OperationTypeRepository) ListAll(ctx context.Context) ([]db_models.OperationType, error) {

	var opTypes []db_models.OperationType
	err := r.db.WithContext(ctx).Order("name asc").Find(&opTypes).Error
	if err != nil {
		return nil, err
	}
	return opTypes, nil
}
