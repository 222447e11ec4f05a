package db_models

import (
	"time"

	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	AccountID           uint   `gorm:"index;not null"`
	Name                string `gorm:"not null"`
	City                string `gorm:"not null"`
	StayAddress         *string
	StartDate           time.Time `gorm:"type:date;not null"`
	EndDate             time.Time `gorm:"type:date;not null"`
	NumTravelers        int      `gorm:"default:1;not null"`
	BudgetPerPerson     *float64
	ActivityPreferences pq.StringArray `gorm:"type:text[]"`

	// Deleting a trip removes every itinerary generated for it.
	Itineraries []Itinerary `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}
