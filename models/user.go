package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	FullName string

	// Body metrics feed the energy expenditure calculation.
	Age           int
	Sex           string  // "male"|"female"|"other"
	HeightCm      float64 // e.g. 170
	WeightKg      float64 // e.g. 70
	ActivityLevel string  // "sedentary"|"lightly_active"|"moderately_active"|"very_active"
}
