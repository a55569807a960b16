package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinicrm/internal/repositories"
	"clinicrm/internal/services"
	"clinicrm/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideResetTokens, provideAuthService)

func provideUserRepo(db *gorm.DB) repositories.IUserRepository {
	return repositories.NewUserRepository(db)
}

func provideResetTokens() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}

func provideAuthService(userRepo repositories.IUserRepository, resetTokens memcache.ResetTokenStore) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, resetTokens)
}
