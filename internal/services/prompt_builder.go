package services

import (
	"fmt"
	"strings"
	"time"

	"funtrip/internal/models/db_models"
	"funtrip/internal/models/request_models"
	"funtrip/pkg/utils"
)

// TripView presents any trip-shaped input — a stored Trip or raw guest
// fields — uniformly to the prompt builder, so both flows produce
// byte-identical prompts for equivalent field values.
type TripView interface {
	TripName() string
	City() string
	StayAddress() string
	StartDate() time.Time
	EndDate() time.Time
	NumTravelers() int
	BudgetPerPerson() *float64
	ActivityPreferences() []string
}

type storedTripView struct {
	trip *db_models.Trip
}

func NewStoredTripView(trip *db_models.Trip) TripView {
	return &storedTripView{trip: trip}
}

func (v *storedTripView) TripName() string     { return v.trip.Name }
func (v *storedTripView) City() string         { return v.trip.City }
func (v *storedTripView) StartDate() time.Time { return v.trip.StartDate }
func (v *storedTripView) EndDate() time.Time   { return v.trip.EndDate }
func (v *storedTripView) NumTravelers() int    { return v.trip.NumTravelers }

func (v *storedTripView) StayAddress() string {
	if v.trip.StayAddress == nil {
		return ""
	}
	return *v.trip.StayAddress
}

func (v *storedTripView) BudgetPerPerson() *float64 { return v.trip.BudgetPerPerson }

func (v *storedTripView) ActivityPreferences() []string {
	return v.trip.ActivityPreferences
}

type guestTripView struct {
	req   request_models.GuestTripRequest
	start time.Time
	end   time.Time
}

// NewGuestTripView parses the guest request's ISO date strings up front;
// malformed dates are an input error, not a pipeline failure.
func NewGuestTripView(req request_models.GuestTripRequest) (TripView, error) {
	start, err := utils.ParseISODate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	end, err := utils.ParseISODate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	return &guestTripView{req: req, start: start, end: end}, nil
}

func (v *guestTripView) TripName() string     { return v.req.Name }
func (v *guestTripView) City() string         { return v.req.City }
func (v *guestTripView) StartDate() time.Time { return v.start }
func (v *guestTripView) EndDate() time.Time   { return v.end }
func (v *guestTripView) NumTravelers() int    { return v.req.NumTravelers }

func (v *guestTripView) StayAddress() string {
	if v.req.StayAddress == nil {
		return ""
	}
	return *v.req.StayAddress
}

func (v *guestTripView) BudgetPerPerson() *float64 { return v.req.BudgetPerPerson }

func (v *guestTripView) ActivityPreferences() []string {
	return v.req.ActivityPreferences
}

// TripDurationDays computes the trip length in whole days, inclusive of both
// endpoints. Fails when the end date precedes the start date.
func TripDurationDays(view TripView) (int, error) {
	if view.EndDate().Before(view.StartDate()) {
		return 0, utils.ErrInvalidDateRange
	}
	return utils.DaysBetween(view.StartDate(), view.EndDate()), nil
}

// BuildItineraryPrompt constructs the instruction sent to the generative
// model: trip context, generation rules, and the exact JSON document shape
// expected back.
func BuildItineraryPrompt(view TripView) (string, error) {
	durationDays, err := TripDurationDays(view)
	if err != nil {
		return "", err
	}

	preferencesStr := ""
	if prefs := view.ActivityPreferences(); len(prefs) > 0 {
		preferencesStr = fmt.Sprintf("User activity preferences: %s. ", strings.Join(prefs, ", "))
	}

	budgetStr := ""
	if budget := view.BudgetPerPerson(); budget != nil {
		totalBudget := *budget * float64(view.NumTravelers())
		budgetStr = fmt.Sprintf("Total trip budget for all travelers: $%.2f USD. ", totalBudget)
	}

	stayAddressStr := ""
	accommodationExample := "General city area"
	if addr := strings.TrimSpace(view.StayAddress()); addr != "" {
		stayAddressStr = fmt.Sprintf("The user is staying at %s. Please factor this location into daily travel logistics and start/end points for activities.", addr)
		accommodationExample = "at " + addr
	}

	startStr := utils.FormatISODate(view.StartDate())
	endStr := utils.FormatISODate(view.EndDate())
	dayTwoStr := utils.FormatISODate(view.StartDate().AddDate(0, 0, 1))
	todayStr := utils.FormatISODate(time.Now())

	var b strings.Builder

	b.WriteString("You are an expert AI trip planner. Your task is to create a detailed, daily itinerary for a trip based on the provided user details.\n")
	fmt.Fprintf(&b, "Today's Date: %s\n\n", todayStr)

	b.WriteString("Trip Details:\n")
	fmt.Fprintf(&b, "- Trip Name: %q\n", view.TripName())
	fmt.Fprintf(&b, "- Destination City: %q\n", view.City())
	fmt.Fprintf(&b, "- Number of Travelers: %d\n", view.NumTravelers())
	fmt.Fprintf(&b, "- Start Date: %s\n", startStr)
	fmt.Fprintf(&b, "- End Date: %s\n", endStr)
	fmt.Fprintf(&b, "- Trip Duration: %d days\n", durationDays)
	fmt.Fprintf(&b, "%s%s\n", preferencesStr, budgetStr)
	if stayAddressStr != "" {
		b.WriteString(stayAddressStr + "\n")
	}

	b.WriteString("\nImportant Instructions for Itinerary Generation:\n")
	b.WriteString(`1. Natural Language Only: Write descriptions that sound like a high-quality travel guide. Do NOT explicitly mention that an activity was chosen because of a specific user preference, and avoid repetitive use of preference keywords.
   BAD: "Visit the ancient palace, which is perfect for your history preference."
   GOOD: "Explore the ancient palace and admire its centuries-old architecture."
2. Output Format: Your entire response MUST be exactly one valid JSON object matching the schema below. Do NOT include any additional text, markdown, or commentary outside of the JSON. Ensure all required fields are present and types match.
`)
	fmt.Fprintf(&b, "3. Daily Plans: Provide a plan for each day of the trip (%d days).\n", durationDays)
	b.WriteString(`4. Activities: Each day must have a list of activities.
   - time: Provide specific times in 12-hour format (e.g., '9:00 AM', '1:30 PM', '7:00 PM'). Do NOT use general periods like Morning/Afternoon/Lunch/Evening/Night.
   - name: A concise name for the activity.
   - description: A brief (1-2 sentence) description.
   - location: A general location or a specific address if a well-known landmark. Assume travel time between locations.
   - estimated_duration_minutes: Provide a reasonable estimate (integer, >= 5).
   - transportation: Suggest how to get there (e.g., "Walk", "Metro", "Taxi", "Bus").
   - cost_usd: Provide an estimated cost in USD (float, >= 0) if applicable. Use 0.0 for free activities.
`)
	fmt.Fprintf(&b, "5. Dates: Ensure the day_date in each daily plan is accurate and sequential starting from %s. Crucially, ensure day_date is formatted as a strict \"YYYY-MM-DD\" string.\n", startStr)
	b.WriteString(`6. Personalization (Implicit): Use the activity preferences to select the types of activities, but do not explicitly label them in the final text.
7. Budget Constraint: The total estimated cost of the itinerary MUST NOT exceed the total trip budget. It should ideally stay within or just below the total budget.
8. Logistics: Consider distances between attractions within a day. Group activities geographically to minimize travel.
9. Realism: Suggest realistic opening hours, typical durations, and general costs for well-known attractions. If specific times/costs are unknown, provide reasonable estimates or leave optional fields null.
10. Comprehensive Itinerary: Include typical travel events like checking into accommodation (if applicable) and major meals where appropriate.

Output Schema (strictly follow this structure, do not deviate):
`)
	fmt.Fprintf(&b, `{
  "title": "A creative, fun, and descriptive title based on the itinerary's main themes and highlights",
  "duration_days": %d,
  "daily_plans": [
    {
      "day_number": 1,
      "day_date": "%s",
      "theme": "Arrival and Exploration",
      "activities": [
        {
          "time": "3:00 PM",
          "name": "Check-in at accommodation",
          "description": "Settle into your accommodation.",
          "location": "%s",
          "estimated_duration_minutes": 60,
          "transportation": "Taxi/Public Transport from Airport",
          "cost_usd": 0.0
        },
        {
          "time": "7:30 PM",
          "name": "Welcome Dinner",
          "description": "Enjoy a casual dinner at a local restaurant.",
          "location": "Near your accommodation",
          "estimated_duration_minutes": 90,
          "transportation": "Walk",
          "cost_usd": 30.0
        }
      ]
    },
    {
      "day_number": 2,
      "day_date": "%s",
      "theme": "Culture and Landmarks",
      "activities": [
        {
          "time": "9:00 AM",
          "name": "Main City Landmark",
          "description": "Explore the city's main cultural attraction.",
          "location": "Specific address or landmark name",
          "estimated_duration_minutes": 180,
          "transportation": "Public Transport",
          "cost_usd": 20.0
        }
      ]
    }
  ],
  "notes": "General tips for your trip, e.g., currency, emergency numbers, local customs. Keep this concise."
}
`, durationDays, startStr, accommodationExample, dayTwoStr)

	fmt.Fprintf(&b, "\nEnsure the day_date fields are strictly \"YYYY-MM-DD\" strings with actual dates based on the trip's start date (%s). The title, duration_days, daily_plans, and notes fields must always be present in the final JSON output.\n", startStr)

	return b.String(), nil
}
