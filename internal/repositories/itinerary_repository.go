package repositories

import (
	"context"
	"errors"

	"funtrip/internal/models/db_models"

	"gorm.io/gorm"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	ListByTrip(ctx context.Context, tripID uint) ([]db_models.Itinerary, error)
	FindByIDAndAccount(ctx context.Context, itineraryID, accountID uint) (*db_models.Itinerary, error)
	Delete(ctx context.Context, itinerary *db_models.Itinerary) error
	// MaxVersion returns 0 when the trip has no itineraries yet.
	MaxVersion(ctx context.Context, tripID uint) (int, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) ListByTrip(ctx context.Context, tripID uint) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("version DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) FindByIDAndAccount(ctx context.Context, itineraryID, accountID uint) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", itineraryID, accountID).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Delete(itinerary).Error
}

func (r *itineraryRepository) MaxVersion(ctx context.Context, tripID uint) (int, error) {
	var maxVersion int
	err := r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("trip_id = ?", tripID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&maxVersion).Error
	if err != nil {
		return 0, err
	}
	return maxVersion, nil
}
