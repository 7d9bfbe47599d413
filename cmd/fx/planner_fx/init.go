package planner_fx

import (
	"go.uber.org/fx"

	"odyssey/internal/services"
)

var Module = fx.Provide(
	services.NewWeatherService,
	services.NewAgentService,
	services.NewLocationService,
	services.NewAccommodationService,
	services.NewActivityService,
	services.NewFlightService,
	services.NewOrchestratorService)
