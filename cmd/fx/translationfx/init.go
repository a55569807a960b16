package translationfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinicrm/internal/repositories"
	"clinicrm/internal/services"
)

var Module = fx.Provide(
	provideTranslationRepo, provideTranslationService)

func provideTranslationRepo(db *gorm.DB) repositories.ITranslationRepository {
	return repositories.NewTranslationRepository(db)
}

func provideTranslationService(translationRepo repositories.ITranslationRepository) services.TranslationServiceInterface {
	return services.NewTranslationService(translationRepo, os.Getenv("DEFAULT_LANGUAGE"))
}
