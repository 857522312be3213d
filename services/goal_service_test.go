package services

import (
	"testing"

	"github.com/D0n4ld07/healthtracker/models"
)

func TestGoalLazyCreation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewGoalService(db)

	goal, err := svc.GetOrCreate(1)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if goal.UserID != 1 {
		t.Fatalf("goal user = %d, want 1", goal.UserID)
	}
	if goal.TargetWeightKg != nil || goal.DailyCalorieTarget != nil || goal.DailyExerciseMinTarget != nil {
		t.Fatalf("fresh goal should have no targets: %+v", goal)
	}

	// repeated access must not create a second row
	if _, err := svc.GetOrCreate(1); err != nil {
		t.Fatalf("second access: %v", err)
	}
	var count int64
	if err := db.Model(&models.Goal{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count goals: %v", err)
	}
	if count != 1 {
		t.Fatalf("goal rows = %d, want 1", count)
	}
}

func TestGoalUpsert(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewGoalService(db)

	goal, err := svc.Upsert(1, floatPtr(75), intPtr(2200), intPtr(45))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if *goal.TargetWeightKg != 75 || *goal.DailyCalorieTarget != 2200 || *goal.DailyExerciseMinTarget != 45 {
		t.Fatalf("targets not stored: %+v", goal)
	}

	// update and clear
	goal, err = svc.Upsert(1, nil, intPtr(1800), nil)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if goal.TargetWeightKg != nil {
		t.Fatalf("weight target should be cleared, got %v", *goal.TargetWeightKg)
	}
	if *goal.DailyCalorieTarget != 1800 {
		t.Fatalf("calorie target = %d, want 1800", *goal.DailyCalorieTarget)
	}

	var count int64
	if err := db.Model(&models.Goal{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count goals: %v", err)
	}
	if count != 1 {
		t.Fatalf("goal rows = %d, want 1", count)
	}
}
