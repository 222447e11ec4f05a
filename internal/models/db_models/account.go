package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool  `gorm:"default:true"`
	IsVerified   bool  `gorm:"default:false"`
	LastLogin    int64 `gorm:"default:0"`

	Trips       []Trip      `gorm:"foreignKey:AccountID"`
	Itineraries []Itinerary `gorm:"foreignKey:AccountID"`
}
