package customerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinicrm/internal/repositories"
	"clinicrm/internal/services"
)

var Module = fx.Provide(
	provideCustomerRepo, provideNoteRepo, provideHistoryRepo, provideCustomerService)

func provideCustomerRepo(db *gorm.DB) repositories.ICustomerRepository {
	return repositories.NewCustomerRepository(db)
}

func provideNoteRepo(db *gorm.DB) repositories.ICustomerNoteRepository {
	return repositories.NewCustomerNoteRepository(db)
}

func provideHistoryRepo(db *gorm.DB) repositories.IHistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideCustomerService(
	customerRepo repositories.ICustomerRepository,
	noteRepo repositories.ICustomerNoteRepository,
	historyRepo repositories.IHistoryRepository) services.CustomerServiceInterface {
	return services.NewCustomerService(customerRepo, noteRepo, historyRepo)
}
