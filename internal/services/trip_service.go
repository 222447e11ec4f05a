package services

import (
	"context"
	"fmt"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/models/response_models"
	"funtrip/internal/repositories"
	"funtrip/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountID uint, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripsByUser(ctx context.Context, accountID uint) ([]response_models.TripResponse, error)
	GetTripByID(ctx context.Context, tripID, accountID uint) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID, accountID uint, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID, accountID uint) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) CreateTrip(ctx context.Context, accountID uint, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	start, err := utils.ParseISODate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	end, err := utils.ParseISODate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	trip := &db_models.Trip{
		AccountID:           accountID,
		Name:                req.Name,
		City:                req.City,
		StayAddress:         req.StayAddress,
		StartDate:           start,
		EndDate:             end,
		NumTravelers:        req.NumTravelers,
		BudgetPerPerson:     req.BudgetPerPerson,
		ActivityPreferences: req.ActivityPreferences,
	}
	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponse(trip), nil
}

func (s *TripService) GetTripsByUser(ctx context.Context, accountID uint) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTripByID(ctx context.Context, tripID, accountID uint) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindByIDAndAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return buildTripResponse(trip), nil
}

// UpdateTrip applies the provided fields to a trip the requester owns. City
// and stay address never change after creation; date edits are re-validated
// against the same range rule as creation.
func (s *TripService) UpdateTrip(ctx context.Context, tripID, accountID uint, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.FindByIDAndAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := utils.ParseISODate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
		}
		trip.StartDate = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseISODate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidInput)
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if req.NumTravelers != nil {
		trip.NumTravelers = *req.NumTravelers
	}
	if req.BudgetPerPerson != nil {
		trip.BudgetPerPerson = req.BudgetPerPerson
	}
	if req.ActivityPreferences != nil {
		trip.ActivityPreferences = req.ActivityPreferences
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildTripResponse(trip), nil
}

// DeleteTrip removes the trip along with every itinerary generated for it.
func (s *TripService) DeleteTrip(ctx context.Context, tripID, accountID uint) error {
	trip, err := s.tripRepo.FindByIDAndAccount(ctx, tripID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := s.tripRepo.Delete(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildTripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:                  trip.ID,
		UserID:              trip.AccountID,
		Name:                trip.Name,
		City:                trip.City,
		StayAddress:         trip.StayAddress,
		StartDate:           utils.FormatISODate(trip.StartDate),
		EndDate:             utils.FormatISODate(trip.EndDate),
		NumTravelers:        trip.NumTravelers,
		BudgetPerPerson:     trip.BudgetPerPerson,
		ActivityPreferences: trip.ActivityPreferences,
	}
}
