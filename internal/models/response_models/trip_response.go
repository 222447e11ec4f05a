package response_models

type TripResponse struct {
	ID                  uint     `json:"id"`
	UserID              uint     `json:"user_id"`
	Name                string   `json:"name"`
	City                string   `json:"city"`
	StayAddress         *string  `json:"stay_address,omitempty"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	NumTravelers        int      `json:"num_travelers"`
	BudgetPerPerson     *float64 `json:"budget_per_person,omitempty"`
	ActivityPreferences []string `json:"activity_preferences,omitempty"`
}
