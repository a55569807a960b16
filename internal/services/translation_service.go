package services

import (
	"context"
	"strings"

	"clinicrm/internal/models/db_models"
	"clinicrm/internal/models/request_models"
	"clinicrm/internal/repositories"
	"clinicrm/pkg/utils"
)

type TranslationServiceInterface interface {
	CreateLanguage(ctx context.Context, req request_models.CreateLanguageRequest) error
	ListLanguages(ctx context.Context) ([]db_models.Language, error)
	CreateTranslation(ctx context.Context, req request_models.CreateTranslationRequest) error
	// GetTranslations resolves the language per request: explicit code
	// first, then the Accept-Language header, then the configured
	// default. No process-wide current-language state.
	GetTranslations(ctx context.Context, langCode string, acceptLanguage string) (map[string]string, error)
}

type TranslationService struct {
	translationRepo repositories.ITranslationRepository
	defaultLanguage string
}

func NewTranslationService(translationRepo repositories.ITranslationRepository, defaultLanguage string) TranslationServiceInterface {
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	return &TranslationService{
		translationRepo: translationRepo,
		defaultLanguage: defaultLanguage,
	}
}

func (t *TranslationService) CreateLanguage(ctx context.Context, req request_models.CreateLanguageRequest) error {

	language := &db_models.Language{
		Code:      strings.ToLower(req.Code),
		Name:      req.Name,
		IsDefault: req.IsDefault,
	}
	if err := t.translationRepo.InsertLanguage(ctx, language); err != nil {
		return utils.TranslateDBError(err, false)
	}
	return nil
}

func (t *TranslationService) ListLanguages(ctx context.Context) ([]db_models.Language, error) {

	languages, err := t.translationRepo.ListLanguages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return languages, nil
}

func (t *TranslationService) CreateTranslation(ctx context.Context, req request_models.CreateTranslationRequest) error {

	language, err := t.translationRepo.GetLanguageByCode(ctx, strings.ToLower(req.LanguageCode))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if language == nil {
		return utils.ErrLanguageNotFound
	}

	translation := &db_models.Translation{
		LanguageID: language.ID,
		Key:        req.Key,
		Value:      req.Value,
	}
	if err := t.translationRepo.InsertTranslation(ctx, translation); err != nil {
		return utils.TranslateDBError(err, false)
	}
	return nil
}

func (t *TranslationService) GetTranslations(ctx context.Context, langCode string, acceptLanguage string) (map[string]string, error) {

	code := ResolveLanguageCode(langCode, acceptLanguage, t.defaultLanguage)

	language, err := t.translationRepo.GetLanguageByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if language == nil {
		return nil, utils.ErrLanguageNotFound
	}

	translations, err := t.translationRepo.ListByLanguage(ctx, language.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make(map[string]string, len(translations))
	for _, tr := range translations {
		out[tr.Key] = tr.Value
	}
	return out, nil
}

// ResolveLanguageCode picks the request language: explicit query param
// wins, then the primary Accept-Language tag, then the default.
func ResolveLanguageCode(explicit string, acceptLanguage string, fallback string) string {

	if explicit != "" {
		return strings.ToLower(explicit)
	}

	if acceptLanguage != "" {
		primary := strings.TrimSpace(strings.Split(acceptLanguage, ",")[0])
		primary = strings.Split(primary, ";")[0]
		primary = strings.Split(primary, "-")[0]
		if primary != "" {
			return strings.ToLower(primary)
		}
	}

	return strings.ToLower(fallback)
}
