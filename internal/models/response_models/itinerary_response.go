package response_models

type ItineraryResponse struct {
	ID                            int64            `json:"id"`
	TripID                        uint             `json:"trip_id"`
	UserID                        uint             `json:"user_id"`
	GeneratedAt                   string           `json:"generated_at"`
	Version                       int              `json:"version"`
	PlanData                      ItineraryContent `json:"plan_data"`
	TotalEstimatedCost            float64          `json:"total_estimated_cost"`
	TotalEstimatedDurationMinutes int              `json:"total_estimated_duration_minutes"`
}
