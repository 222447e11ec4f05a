package response_models

// ItineraryContent is the structured document the generative model must
// produce. It is stored verbatim as an itinerary's plan_data and returned to
// clients in the same shape.
type ItineraryContent struct {
	Title        string      `json:"title"`
	DurationDays int         `json:"duration_days"`
	DailyPlans   []DailyPlan `json:"daily_plans"`
	Notes        *string     `json:"notes,omitempty"`
}

// DailyPlan is one calendar day's ordered activities. DayDate is a strict
// "YYYY-MM-DD" string.
type DailyPlan struct {
	DayNumber  int        `json:"day_number"`
	DayDate    string     `json:"day_date"`
	Theme      *string    `json:"theme,omitempty"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time                     string   `json:"time"`
	Name                     string   `json:"name"`
	Description              *string  `json:"description,omitempty"`
	Location                 *string  `json:"location,omitempty"`
	EstimatedDurationMinutes *int     `json:"estimated_duration_minutes,omitempty"`
	Transportation           *string  `json:"transportation,omitempty"`
	CostUSD                  *float64 `json:"cost_usd,omitempty"`
}
