package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/services"
	"funtrip/pkg/utils"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func sampleTrip() *db_models.Trip {
	return &db_models.Trip{
		BaseModel:           db_models.BaseModel{ID: 42},
		AccountID:           7,
		Name:                "Kyoto Getaway",
		City:                "Kyoto",
		StayAddress:         strPtr("12 Gion District"),
		StartDate:           time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
		NumTravelers:        2,
		BudgetPerPerson:     floatPtr(50),
		ActivityPreferences: []string{"history", "food"},
	}
}

func sampleGuestRequest() request_models.GuestTripRequest {
	return request_models.GuestTripRequest{
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

func TestTripDurationDays_InclusiveOfBothEndpoints(t *testing.T) {
	view := services.NewStoredTripView(sampleTrip())

	days, err := services.TripDurationDays(view)

	require.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestTripDurationDays_SingleDayTrip(t *testing.T) {
	trip := sampleTrip()
	trip.EndDate = trip.StartDate

	days, err := services.TripDurationDays(services.NewStoredTripView(trip))

	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestTripDurationDays_EndBeforeStart(t *testing.T) {
	trip := sampleTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, -1)

	_, err := services.TripDurationDays(services.NewStoredTripView(trip))

	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestBuildItineraryPrompt_ContainsTripDetails(t *testing.T) {
	prompt, err := services.BuildItineraryPrompt(services.NewStoredTripView(sampleTrip()))

	require.NoError(t, err)
	assert.Contains(t, prompt, `- Trip Name: "Kyoto Getaway"`)
	assert.Contains(t, prompt, `- Destination City: "Kyoto"`)
	assert.Contains(t, prompt, "- Trip Duration: 3 days")
	assert.Contains(t, prompt, "- Start Date: 2025-09-01")
	assert.Contains(t, prompt, "- End Date: 2025-09-03")
	assert.Contains(t, prompt, "User activity preferences: history, food. ")
	assert.Contains(t, prompt, "The user is staying at 12 Gion District.")
}

func TestBuildItineraryPrompt_BudgetIsTotalAcrossTravelers(t *testing.T) {
	// 50 per person, 2 travelers
	prompt, err := services.BuildItineraryPrompt(services.NewStoredTripView(sampleTrip()))

	require.NoError(t, err)
	assert.Contains(t, prompt, "Total trip budget for all travelers: $100.00 USD. ")
}

func TestBuildItineraryPrompt_OptionalFieldsOmitted(t *testing.T) {
	trip := sampleTrip()
	trip.StayAddress = nil
	trip.BudgetPerPerson = nil
	trip.ActivityPreferences = nil

	prompt, err := services.BuildItineraryPrompt(services.NewStoredTripView(trip))

	require.NoError(t, err)
	assert.NotContains(t, prompt, "Total trip budget")
	assert.NotContains(t, prompt, "The user is staying at")
	assert.NotContains(t, prompt, "User activity preferences")
	assert.Contains(t, prompt, "General city area")
}

func TestBuildItineraryPrompt_SchemaDatesFollowTripStart(t *testing.T) {
	prompt, err := services.BuildItineraryPrompt(services.NewStoredTripView(sampleTrip()))

	require.NoError(t, err)
	assert.Contains(t, prompt, `"day_date": "2025-09-01"`)
	assert.Contains(t, prompt, `"day_date": "2025-09-02"`)
}

func TestBuildItineraryPrompt_GuestAndStoredProduceSamePrompt(t *testing.T) {
	guestView, err := services.NewGuestTripView(sampleGuestRequest())
	require.NoError(t, err)

	guestPrompt, err := services.BuildItineraryPrompt(guestView)
	require.NoError(t, err)

	storedPrompt, err := services.BuildItineraryPrompt(services.NewStoredTripView(sampleTrip()))
	require.NoError(t, err)

	assert.Equal(t, storedPrompt, guestPrompt)
}

func TestNewGuestTripView_RejectsMalformedDates(t *testing.T) {
	req := sampleGuestRequest()
	req.StartDate = "09/01/2025"

	_, err := services.NewGuestTripView(req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}
