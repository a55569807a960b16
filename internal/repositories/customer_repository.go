package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type ICustomerRepository interface {
	Insert(ctx context.Context, customer *db_models.Customer) error
	GetByID(ctx context.Context, id string) (*db_models.Customer, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Customer, error)
	InsertStatus(ctx context.Context, status *db_models.CustomerStatus) error
	ListStatuses(ctx context.Context) ([]db_models.CustomerStatus, error)
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{db: db}
}

func (r CustomerRepository) Insert(ctx context.Context, customer *db_models.Customer) error {

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(customer).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r CustomerRepository) GetByID(ctx context.Context, id string) (*db_models.Customer, error) {

	var customer db_models.Customer
	err := r.db.WithContext(ctx).
		Preload("Consultant").
		Preload("Status").
		First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r CustomerRepository) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Customer, error) {

	var customers []db_models.Customer
	err := r.db.WithContext(ctx).
		Preload("Consultant").
		Preload("Status").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Order("created_at desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r CustomerRepository) InsertStatus(ctx context.Context, status *db_models.CustomerStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r CustomerRepository) ListStatuses(ctx context.Context) ([]db_models.CustomerStatus, error) {

	var statuses []db_models.CustomerStatus
	err := r.db.WithContext(ctx).Order("name asc").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
