package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Place struct {
	gorm.Model
	OwnerID         uint   `gorm:"index"`
	CityID          uint   `gorm:"index"`
	Name            string `gorm:"size:128;not null"`
	Description     string `gorm:"type:text"`
	NumberRooms     int    `gorm:"default:0"`
	NumberBathrooms int    `gorm:"default:0"`
	MaxGuest        int    `gorm:"default:0"`
	PriceByNight    int    `gorm:"default:0"`
	Latitude        float64
	Longitude       float64
	Images          datatypes.JSON `gorm:"type:jsonb"`

	Owner    *User       `gorm:"foreignKey:OwnerID"`
	City     *City       `gorm:"foreignKey:CityID"`
	Bookings []PlaceBook `gorm:"foreignKey:PlaceID"`
}

func (p Place) MarshalJSON() ([]byte, error) {
	images := json.RawMessage("[]")
	if len(p.Images) > 0 {
		images = json.RawMessage(p.Images)
	}
	return json.Marshal(map[string]interface{}{
		"id":               p.ID,
		"created_at":       FormatTime(p.CreatedAt),
		"updated_at":       FormatTime(p.UpdatedAt),
		"owner_id":         p.OwnerID,
		"city_id":          p.CityID,
		"name":             p.Name,
		"description":      p.Description,
		"number_rooms":     p.NumberRooms,
		"number_bathrooms": p.NumberBathrooms,
		"max_guest":        p.MaxGuest,
		"price_by_night":   p.PriceByNight,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"images":           images,
	})
}
