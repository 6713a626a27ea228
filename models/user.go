package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"password"` // HMAC-SHA512 digest, hex
	Salt     string  `gorm:"not null" json:"salt"`
	Name     string  `json:"name"`
	Height   float64 `json:"height"` // cm
	Gender   string  `json:"gender"` // "Male" | "Female" | anything else
	Weight   float64 `json:"weight"` // kg
	Age      int     `json:"age"`
	Calories float64 `json:"calories"` // baseline daily calories
}
