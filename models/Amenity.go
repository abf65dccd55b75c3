package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Amenity struct {
	gorm.Model
	Name string `gorm:"size:128;not null;uniqueIndex"`
}

func (a Amenity) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":         a.ID,
		"created_at": FormatTime(a.CreatedAt),
		"updated_at": FormatTime(a.UpdatedAt),
		"name":       a.Name,
	})
}

// PlaceAmenity links an amenity to a place. Rows carry no payload of their
// own, so they are created and deleted directly by the amenity routes.
type PlaceAmenity struct {
	PlaceID   uint `gorm:"primaryKey;autoIncrement:false"`
	AmenityID uint `gorm:"primaryKey;autoIncrement:false"`
}
