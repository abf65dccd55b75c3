package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// PlaceBook is a booking of one place by one user. The user may not change
// after creation; the place is fixed by the route the booking was created on.
type PlaceBook struct {
	gorm.Model
	PlaceID      uint      `gorm:"index;not null"`
	UserID       uint      `gorm:"not null"`
	IsValidated  bool      `gorm:"default:false"`
	DateStart    time.Time `gorm:"not null"`
	NumberNights int       `gorm:"default:1"`

	Place *Place `gorm:"foreignKey:PlaceID"`
	User  *User  `gorm:"foreignKey:UserID"`
}

func (b PlaceBook) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":            b.ID,
		"created_at":    FormatTime(b.CreatedAt),
		"updated_at":    FormatTime(b.UpdatedAt),
		"place_id":      b.PlaceID,
		"user_id":       b.UserID,
		"is_validated":  b.IsValidated,
		"date_start":    FormatTime(b.DateStart),
		"number_nights": b.NumberNights,
	})
}
