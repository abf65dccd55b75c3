package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type State struct {
	gorm.Model
	Name   string `gorm:"size:128;not null;uniqueIndex"`
	Cities []City `gorm:"constraint:OnDelete:CASCADE"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":         s.ID,
		"created_at": FormatTime(s.CreatedAt),
		"updated_at": FormatTime(s.UpdatedAt),
		"name":       s.Name,
	})
}
