package controllers_fx

import (
	"go.uber.org/fx"

	"odyssey/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController))
