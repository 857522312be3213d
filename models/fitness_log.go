package models

import (
	"time"

	"gorm.io/gorm"
)

type FitnessLog struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null"`
	Date           time.Time `gorm:"index;not null"`
	ActivityType   string    `gorm:"not null"`
	DurationMin    int       `gorm:"not null"` // minutes
	CaloriesBurned int       `gorm:"not null"`
}
