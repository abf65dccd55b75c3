package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Review holds the text written by UserID (the author). What it reviews is
// recorded separately: a ReviewUser or ReviewPlace row pointing back at it.
type Review struct {
	gorm.Model
	Message string `gorm:"type:text;not null"`
	Stars   int    `gorm:"default:0"`
	UserID  uint   `gorm:"not null"`

	// Populated by the routes before serializing, never stored.
	ToUserID  *uint `gorm:"-"`
	ToPlaceID *uint `gorm:"-"`
}

type ReviewUser struct {
	UserID   uint `gorm:"primaryKey;autoIncrement:false"`
	ReviewID uint `gorm:"primaryKey;autoIncrement:false"`
}

type ReviewPlace struct {
	PlaceID  uint `gorm:"primaryKey;autoIncrement:false"`
	ReviewID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (r Review) MarshalJSON() ([]byte, error) {
	var toUser, toPlace interface{}
	if r.ToUserID != nil {
		toUser = *r.ToUserID
	}
	if r.ToPlaceID != nil {
		toPlace = *r.ToPlaceID
	}
	return json.Marshal(map[string]interface{}{
		"id":         r.ID,
		"created_at": FormatTime(r.CreatedAt),
		"updated_at": FormatTime(r.UpdatedAt),
		"message":    r.Message,
		"stars":      r.Stars,
		"fromuserid": r.UserID,
		"touserid":   toUser,
		"toplaceid":  toPlace,
	})
}
