package itinerary_fx

import (
	"funtrip/internal/repositories"
	"funtrip/internal/services"
	"funtrip/pkg/utils"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.GenerativeClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, itineraryRepo, aiClient)
}
