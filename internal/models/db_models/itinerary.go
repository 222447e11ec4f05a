package db_models

import (
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	TripID      uint `gorm:"index;not null"`
	AccountID   uint `gorm:"index;not null"`
	GeneratedAt int64
	// Version counts generations per trip, starting at 1.
	Version                       int            `gorm:"default:1;not null"`
	PlanData                      datatypes.JSON `gorm:"type:jsonb;not null"`
	TotalEstimatedCost            *float64
	TotalEstimatedDurationMinutes *int
}
