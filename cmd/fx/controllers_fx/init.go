package controllers_fx

import (
	"funtrip/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewTripController,
	controllers.NewItineraryController,
)
