package operationfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"clinicrm/internal/repositories"
	"clinicrm/internal/services"
)

var Module = fx.Provide(
	provideOperationTypeRepo, providePlanRepo, provideOperationService, provideNotificationService)

func provideOperationTypeRepo(db *gorm.DB) repositories.IOperationTypeRepository {
	return repositories.NewOperationTypeRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.IFollowupPlanRepository {
	return repositories.NewFollowupPlanRepository(db)
}

func provideOperationService(
	opTypeRepo repositories.IOperationTypeRepository,
	planRepo repositories.IFollowupPlanRepository) services.OperationServiceInterface {
	strictOffsets := os.Getenv("FOLLOWUP_STRICT_OFFSETS") == "true"
	return services.NewOperationService(opTypeRepo, planRepo, strictOffsets)
}

func provideNotificationService(planRepo repositories.IFollowupPlanRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(planRepo)
}
