package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"funtrip/internal/models/response_models"
	"funtrip/pkg/utils"
)

// ExtractJSONPayload locates the JSON document inside a raw model reply that
// may carry markdown fences or surrounding commentary. It strips fences, then
// takes the span from the first '{' to the last '}' inclusive; if either
// delimiter is missing the whole text is returned and left for the parser to
// reject.
//
// Known limitation: this is a boundary scan, not a tokenizer. A reply holding
// more than one top-level JSON object, or stray braces outside the payload,
// can widen the span. The prompt demands exactly one raw JSON object to keep
// this case out of normal operation.
func ExtractJSONPayload(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return cleaned[start : end+1]
}

// ParseItineraryContent decodes the candidate payload, separating "not valid
// JSON" from "valid JSON with ill-typed fields". Missing fields are the
// validator's concern.
func ParseItineraryContent(payload string) (*response_models.ItineraryContent, error) {
	var content response_models.ItineraryContent
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has wrong type", utils.ErrContentNotJSON, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrContentNotJSON, err)
	}
	return &content, nil
}

// ValidateItineraryContent checks the parsed document against the content
// contract for a trip starting at startDate with expectedDays days. All
// violations are collected; the document is accepted whole or rejected whole.
func ValidateItineraryContent(content *response_models.ItineraryContent, startDate time.Time, expectedDays int) error {
	var violations []utils.SchemaViolation

	add := func(field, reason string) {
		violations = append(violations, utils.SchemaViolation{Field: field, Reason: reason})
	}

	if strings.TrimSpace(content.Title) == "" {
		add("title", "required")
	}
	if content.DurationDays < 1 {
		add("duration_days", "must be at least 1")
	} else if content.DurationDays != expectedDays {
		add("duration_days", fmt.Sprintf("must equal the trip duration of %d days, got %d", expectedDays, content.DurationDays))
	}
	if len(content.DailyPlans) == 0 {
		add("daily_plans", "required")
	} else if len(content.DailyPlans) != content.DurationDays {
		add("daily_plans", fmt.Sprintf("expected %d entries to match duration_days, got %d", content.DurationDays, len(content.DailyPlans)))
	}

	for i, plan := range content.DailyPlans {
		field := fmt.Sprintf("daily_plans[%d]", i)

		if plan.DayNumber < 1 {
			add(field+".day_number", "must be at least 1")
		} else if plan.DayNumber != i+1 {
			add(field+".day_number", fmt.Sprintf("days must be contiguous starting at 1, expected %d got %d", i+1, plan.DayNumber))
		}

		date, err := utils.ParseISODate(plan.DayDate)
		if err != nil {
			add(field+".day_date", "must be a YYYY-MM-DD date")
		} else if expected := startDate.AddDate(0, 0, i); !sameDate(date, expected) {
			add(field+".day_date", fmt.Sprintf("expected %s, got %s", utils.FormatISODate(expected), plan.DayDate))
		}

		if plan.Activities == nil {
			add(field+".activities", "required")
		}

		for j, activity := range plan.Activities {
			actField := fmt.Sprintf("%s.activities[%d]", field, j)

			if strings.TrimSpace(activity.Time) == "" {
				add(actField+".time", "required")
			}
			if strings.TrimSpace(activity.Name) == "" {
				add(actField+".name", "required")
			}
			if activity.EstimatedDurationMinutes != nil && *activity.EstimatedDurationMinutes < 5 {
				add(actField+".estimated_duration_minutes", "must be at least 5")
			}
			if activity.CostUSD != nil && *activity.CostUSD < 0 {
				add(actField+".cost_usd", "must not be negative")
			}
		}
	}

	if len(violations) > 0 {
		return utils.NewSchemaViolationError(violations)
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ComputeAggregates sums activity costs and durations across all days.
// Missing values contribute zero. Pure and deterministic.
func ComputeAggregates(content *response_models.ItineraryContent) (totalCost float64, totalDurationMinutes int) {
	for _, plan := range content.DailyPlans {
		for _, activity := range plan.Activities {
			if activity.CostUSD != nil {
				totalCost += *activity.CostUSD
			}
			if activity.EstimatedDurationMinutes != nil {
				totalDurationMinutes += *activity.EstimatedDurationMinutes
			}
		}
	}
	return totalCost, totalDurationMinutes
}
