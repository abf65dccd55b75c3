package models

import (
	"encoding/json"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string  `gorm:"size:128;not null;uniqueIndex"`
	Password  string  `gorm:"size:128;not null"`
	FirstName string  `gorm:"size:128;not null"`
	LastName  string  `gorm:"size:128;not null"`
	IsAdmin   bool    `gorm:"default:false"`
	Places    []Place `gorm:"foreignKey:OwnerID"`
}

// SetPassword stores a bcrypt hash of the clear password.
func (u *User) SetPassword(clear string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(clear), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(clear string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(clear)) == nil
}

// The password hash never leaves the server.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":         u.ID,
		"created_at": FormatTime(u.CreatedAt),
		"updated_at": FormatTime(u.UpdatedAt),
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"is_admin":   u.IsAdmin,
	})
}
