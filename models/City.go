package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name    string `gorm:"size:128;not null"`
	StateID uint   `gorm:"index"`
	State   *State
}

func (c City) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":         c.ID,
		"created_at": FormatTime(c.CreatedAt),
		"updated_at": FormatTime(c.UpdatedAt),
		"name":       c.Name,
		"state_id":   c.StateID,
	})
}
