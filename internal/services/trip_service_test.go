package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/services"
	"funtrip/pkg/utils"
)

func sampleCreateRequest() request_models.CreateTripRequest {
	return request_models.CreateTripRequest{
		Name:                "Kyoto Getaway",
		City:                "Kyoto",
		StayAddress:         strPtr("12 Gion District"),
		StartDate:           "2025-09-01",
		EndDate:             "2025-09-03",
		NumTravelers:        2,
		BudgetPerPerson:     floatPtr(50),
		ActivityPreferences: []string{"history", "food"},
	}
}

func TestTripService_CreateTrip_Valid(t *testing.T) {
	tripRepo := &mockTripRepo{
		insert: func(_ context.Context, trip *db_models.Trip) error {
			trip.ID = 42
			return nil
		},
	}
	svc := services.NewTripService(tripRepo)

	got, err := svc.CreateTrip(context.Background(), 7, sampleCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "2025-09-01", got.StartDate)
	assert.Equal(t, "2025-09-03", got.EndDate)
	assert.Equal(t, []string{"history", "food"}, got.ActivityPreferences)
}

func TestTripService_CreateTrip_EndBeforeStart(t *testing.T) {
	req := sampleCreateRequest()
	req.EndDate = "2025-08-30"
	svc := services.NewTripService(&mockTripRepo{})

	_, err := svc.CreateTrip(context.Background(), 7, req)

	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestTripService_CreateTrip_MalformedDate(t *testing.T) {
	req := sampleCreateRequest()
	req.StartDate = "Sept 1st"
	svc := services.NewTripService(&mockTripRepo{})

	_, err := svc.CreateTrip(context.Background(), 7, req)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripService_UpdateTrip_AppliesOnlyProvidedFields(t *testing.T) {
	trip := sampleTrip()
	tripRepo := ownedTripRepo(trip)
	tripRepo.update = func(_ context.Context, _ *db_models.Trip) error { return nil }
	svc := services.NewTripService(tripRepo)

	got, err := svc.UpdateTrip(context.Background(), trip.ID, trip.AccountID, request_models.UpdateTripRequest{
		Name:         strPtr("Kyoto in Autumn"),
		NumTravelers: intPtr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, "Kyoto in Autumn", got.Name)
	assert.Equal(t, 4, got.NumTravelers)
	assert.Equal(t, "Kyoto", got.City)
	assert.Equal(t, "2025-09-01", got.StartDate)
}

func TestTripService_UpdateTrip_RejectsInvertedDateRange(t *testing.T) {
	trip := sampleTrip()
	tripRepo := ownedTripRepo(trip)
	svc := services.NewTripService(tripRepo)

	_, err := svc.UpdateTrip(context.Background(), trip.ID, trip.AccountID, request_models.UpdateTripRequest{
		EndDate: strPtr("2025-08-20"),
	})

	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestTripService_UpdateTrip_NotFound(t *testing.T) {
	tripRepo := &mockTripRepo{
		findByIDAndAccount: func(_ context.Context, _, _ uint) (*db_models.Trip, error) {
			return nil, nil
		},
	}
	svc := services.NewTripService(tripRepo)

	_, err := svc.UpdateTrip(context.Background(), 99, 7, request_models.UpdateTripRequest{})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripService_GetTripsByUser_MapsAllRows(t *testing.T) {
	tripRepo := &mockTripRepo{
		listByAccount: func(_ context.Context, accountID uint) ([]db_models.Trip, error) {
			first := *sampleTrip()
			second := *sampleTrip()
			second.ID = 43
			second.Name = "Osaka Weekend"
			return []db_models.Trip{first, second}, nil
		},
	}
	svc := services.NewTripService(tripRepo)

	got, err := svc.GetTripsByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Kyoto Getaway", got[0].Name)
	assert.Equal(t, "Osaka Weekend", got[1].Name)
}

func TestTripService_DeleteTrip_NotFound(t *testing.T) {
	tripRepo := &mockTripRepo{
		findByIDAndAccount: func(_ context.Context, _, _ uint) (*db_models.Trip, error) {
			return nil, nil
		},
	}
	svc := services.NewTripService(tripRepo)

	err := svc.DeleteTrip(context.Background(), 99, 7)

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
