package controllersfx

import (
	"go.uber.org/fx"

	"clinicrm/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCustomerController),
	fx.Provide(controllers.NewOperationController),
	fx.Provide(controllers.NewMeetingController),
	fx.Provide(controllers.NewTranslationController))
