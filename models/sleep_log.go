package models

import (
	"time"

	"gorm.io/gorm"
)

// SleepLog keeps the raw start/end plus the derived duration so
// aggregation never has to recompute it.
type SleepLog struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null"`
	SleepStart    time.Time `gorm:"not null"`
	SleepEnd      time.Time `gorm:"index;not null"`
	DurationHours float64   `gorm:"not null"`
}
