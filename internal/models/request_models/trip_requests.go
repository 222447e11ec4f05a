package request_models

type CreateTripRequest struct {
	Name                string   `json:"name" binding:"required,min=1,max=100"`
	City                string   `json:"city" binding:"required,min=1,max=100"`
	StayAddress         *string  `json:"stay_address"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	NumTravelers        int      `json:"num_travelers" binding:"required,min=1"`
	BudgetPerPerson     *float64 `json:"budget_per_person" binding:"omitempty,gte=0"`
	ActivityPreferences []string `json:"activity_preferences"`
}

// UpdateTripRequest leaves every field optional. City and stay address are
// intentionally absent: they are fixed once a trip is created.
type UpdateTripRequest struct {
	Name                *string  `json:"name" binding:"omitempty,min=1,max=100"`
	StartDate           *string  `json:"start_date"`
	EndDate             *string  `json:"end_date"`
	NumTravelers        *int     `json:"num_travelers" binding:"omitempty,min=1"`
	BudgetPerPerson     *float64 `json:"budget_per_person" binding:"omitempty,gte=0"`
	ActivityPreferences []string `json:"activity_preferences"`
}

// GuestTripRequest carries raw trip fields for stateless generation; nothing
// is persisted for guests.
type GuestTripRequest struct {
	Name                string   `json:"name" binding:"required,min=1,max=100"`
	City                string   `json:"city" binding:"required,min=1,max=100"`
	StayAddress         *string  `json:"stay_address"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	NumTravelers        int      `json:"num_travelers" binding:"required,min=1"`
	BudgetPerPerson     *float64 `json:"budget_per_person" binding:"omitempty,gte=0"`
	ActivityPreferences []string `json:"activity_preferences"`
}
