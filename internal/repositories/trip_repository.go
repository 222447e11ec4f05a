package repositories

import (
	"context"
	"errors"

	"funtrip/internal/models/db_models"

	"gorm.io/gorm"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByAccount(ctx context.Context, accountID uint) ([]db_models.Trip, error)
	// FindByIDAndAccount returns (nil, nil) both when the trip is absent and
	// when it belongs to someone else.
	FindByIDAndAccount(ctx context.Context, tripID, accountID uint) (*db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, trip *db_models.Trip) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID uint) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("start_date").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIDAndAccount(ctx context.Context, tripID, accountID uint) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripID, accountID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", trip.ID).
			Delete(&db_models.Itinerary{}).Error; err != nil {
			return err
		}
		return tx.Delete(trip).Error
	})
}
