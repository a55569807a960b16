package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

type ITranslationRepository interface {
	InsertLanguage(ctx context.Context, language *db_models.Language) error
	GetLanguageByCode(ctx context.Context, code string) (*db_models.Language, error)
	ListLanguages(ctx context.Context) ([]db_models.Language, error)
	InsertTranslation(ctx context.Context, translation *db_models.Translation) error
	ListByLanguage(ctx context.Context, languageID string) ([]db_models.Translation, error)
}

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) ITranslationRepository {
	return &TranslationRepository{db: db}
}

func (r TranslationRepository) InsertLanguage(ctx context.Context, language *db_models.Language) error {
	return r.db.WithContext(ctx).Create(language).Error
}

func (r TranslationRepository) GetLanguageByCode(ctx context.Context, code string) (*db_models.Language, error) {

	var language db_models.Language
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r TranslationRepository) ListLanguages(ctx context.Context) ([]db_models.Language, error) {

	var languages []db_models.Language
	err := r.db.WithContext(ctx).Order("code asc").Find(&languages).Error
	if err != nil {
		return nil, err
	}
	return languages, nil
}

func (r TranslationRepository) InsertTranslation(ctx context.Context, translation *db_models.Translation) error {
	return r.db.WithContext(ctx).Create(translation).Error
}

func (r TranslationRepository) ListByLanguage(ctx context.Context, languageID string) ([]db_models.Translation, error) {

	var translations []db_models.Translation
	err := r.db.WithContext(ctx).
		Where("language_id = ?", languageID).
		Order("key asc").
		Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}
