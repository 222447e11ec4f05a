package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/internal/models/response_models"
	"funtrip/internal/repositories"
	"funtrip/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateForTrip(ctx context.Context, tripID, accountID uint) (*response_models.ItineraryResponse, error)
	GenerateForGuest(ctx context.Context, req request_models.GuestTripRequest) (*response_models.ItineraryResponse, error)
	GetItinerariesByTrip(ctx context.Context, tripID, accountID uint) ([]response_models.ItineraryResponse, error)
	GetItineraryByID(ctx context.Context, itineraryID, accountID uint) (*response_models.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, itineraryID, accountID uint) error
}

type ItineraryService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
	aiClient      utils.GenerativeClientInterface
}

func NewItineraryService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.GenerativeClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
		aiClient:      aiClient,
	}
}

// generateContent runs the shared pipeline: prompt, model call, extraction,
// validation, aggregation. Every generation goes to the model; responses are
// never cached or deduplicated.
func (s *ItineraryService) generateContent(ctx context.Context, view TripView) (*response_models.ItineraryContent, float64, int, error) {
	prompt, err := BuildItineraryPrompt(view)
	if err != nil {
		return nil, 0, 0, err
	}

	rawText, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Generative model call failed: %v", err)
		return nil, 0, 0, utils.ErrAIUpstream
	}

	payload := ExtractJSONPayload(rawText)

	content, err := ParseItineraryContent(payload)
	if err != nil {
		log.Printf("Model response failed JSON parse: %v\nRaw response: %s", err, rawText)
		return nil, 0, 0, err
	}

	durationDays, err := TripDurationDays(view)
	if err != nil {
		return nil, 0, 0, err
	}

	if err := ValidateItineraryContent(content, view.StartDate(), durationDays); err != nil {
		log.Printf("Model response failed schema validation: %v\nRaw response: %s", err, rawText)
		return nil, 0, 0, err
	}

	totalCost, totalDuration := ComputeAggregates(content)
	return content, totalCost, totalDuration, nil
}

// GenerateForTrip produces and persists a new itinerary version for a trip
// the requester owns. A trip that is absent or owned by someone else is
// reported identically as not found.
func (s *ItineraryService) GenerateForTrip(ctx context.Context, tripID, accountID uint) (*response_models.ItineraryResponse, error) {
	trip, err := s.tripRepo.FindByIDAndAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	content, totalCost, totalDuration, err := s.generateContent(ctx, NewStoredTripView(trip))
	if err != nil {
		return nil, err
	}

	latestVersion, err := s.itineraryRepo.MaxVersion(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	newVersion := latestVersion + 1

	planData, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan data: %w", err)
	}

	itinerary := &db_models.Itinerary{
		TripID:                        trip.ID,
		AccountID:                     trip.AccountID,
		GeneratedAt:                   time.Now().Unix(),
		Version:                       newVersion,
		PlanData:                      planData,
		TotalEstimatedCost:            &totalCost,
		TotalEstimatedDurationMinutes: &totalDuration,
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildItineraryResponse(itinerary, content), nil
}

// GenerateForGuest runs the same pipeline without persistence. Identifiers
// are synthetic since nothing is stored, and the version is always 1.
func (s *ItineraryService) GenerateForGuest(ctx context.Context, req request_models.GuestTripRequest) (*response_models.ItineraryResponse, error) {
	view, err := NewGuestTripView(req)
	if err != nil {
		return nil, err
	}

	content, totalCost, totalDuration, err := s.generateContent(ctx, view)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &response_models.ItineraryResponse{
		ID:                            now.Unix(),
		TripID:                        0,
		UserID:                        0,
		GeneratedAt:                   now.Format(time.RFC3339),
		Version:                       1,
		PlanData:                      *content,
		TotalEstimatedCost:            totalCost,
		TotalEstimatedDurationMinutes: totalDuration,
	}, nil
}

func (s *ItineraryService) GetItinerariesByTrip(ctx context.Context, tripID, accountID uint) ([]response_models.ItineraryResponse, error) {
	trip, err := s.tripRepo.FindByIDAndAccount(ctx, tripID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	itineraries, err := s.itineraryRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		resp, err := decodeItineraryRow(&itineraries[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, itineraryID, accountID uint) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.FindByIDAndAccount(ctx, itineraryID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return decodeItineraryRow(itinerary)
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, itineraryID, accountID uint) error {
	itinerary, err := s.itineraryRepo.FindByIDAndAccount(ctx, itineraryID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if err := s.itineraryRepo.Delete(ctx, itinerary); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildItineraryResponse(row *db_models.Itinerary, content *response_models.ItineraryContent) *response_models.ItineraryResponse {
	resp := &response_models.ItineraryResponse{
		ID:          int64(row.ID),
		TripID:      row.TripID,
		UserID:      row.AccountID,
		GeneratedAt: time.Unix(row.GeneratedAt, 0).UTC().Format(time.RFC3339),
		Version:     row.Version,
		PlanData:    *content,
	}
	if row.TotalEstimatedCost != nil {
		resp.TotalEstimatedCost = *row.TotalEstimatedCost
	}
	if row.TotalEstimatedDurationMinutes != nil {
		resp.TotalEstimatedDurationMinutes = *row.TotalEstimatedDurationMinutes
	}
	return resp
}

func decodeItineraryRow(row *db_models.Itinerary) (*response_models.ItineraryResponse, error) {
	var content response_models.ItineraryContent
	if err := json.Unmarshal(row.PlanData, &content); err != nil {
		log.Printf("Stored plan_data for itinerary %d is unreadable: %v", row.ID, err)
		return nil, utils.ErrDatabaseError
	}
	return buildItineraryResponse(row, &content), nil
}
