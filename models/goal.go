package models

import (
	"gorm.io/gorm"
)

// Goal holds a user's targets. At most one row per user; created lazily
// on first access, and only ever upserted after that. Nil target means
// the user has not set one.
type Goal struct {
	gorm.Model
	UserID                 uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	TargetWeightKg         *float64 `json:"target_weight_kg"`
	DailyCalorieTarget     *int     `json:"daily_calorie_intake_target"`
	DailyExerciseMinTarget *int     `json:"daily_exercise_minutes_target"`
}
