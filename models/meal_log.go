package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal entry.
type MealLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	MealType string    // "Breakfast"|"Lunch"|…
	Food     string    `gorm:"not null"`
	Calories int       `gorm:"not null"`
}
