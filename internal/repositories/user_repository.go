package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	ListAll(ctx context.Context) ([]db_models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (u UserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {

	var user db_models.User
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u UserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {

	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u UserRepository) Insert(ctx context.Context, user *db_models.User) error {

	return u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
		return nil
	})
}

func (u UserRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	return u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (u UserRepository) ListAll(ctx context.Context) ([]db_models.User, error) {

	var users []db_models.User
	err := u.db.WithContext(ctx).Order("name asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
