package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog snapshots height alongside weight; BMI is computed once at
// insert time and stored.
type WeightLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	WeightKg float64   `gorm:"not null"`
	HeightCm float64   `gorm:"not null"`
	BMI      float64   `gorm:"not null"`
}
