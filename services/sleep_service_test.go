package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestSleepCreateRollsOverMidnight(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewSleepService(db)

	log, err := svc.Create(1,
		mustDateTime(t, "2025-08-01 22:00"), mustDateTime(t, "2025-08-01 06:00"))
	if err != nil {
		t.Fatalf("create sleep: %v", err)
	}
	if log.DurationHours != 8 {
		t.Fatalf("duration = %v, want 8", log.DurationHours)
	}
	if log.SleepEnd.Day() != 2 {
		t.Fatalf("end day = %d, want rolled over to 2", log.SleepEnd.Day())
	}
}

func TestSleepCreateRejectsZeroDuration(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewSleepService(db)

	start := mustDateTime(t, "2025-08-01 22:00")
	if _, err := svc.Create(1, start, start); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestLogDeleteScopedToOwner(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewMealService(db)

	log, err := svc.Create(1, mustDate(t, "2025-08-01"), "Lunch", "soup", 350)
	if err != nil {
		t.Fatalf("create meal: %v", err)
	}

	// user 2 cannot delete user 1's row
	if err := svc.Delete(2, log.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("cross-user delete: got %v, want ErrRecordNotFound", err)
	}
	if err := svc.Delete(1, log.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(1, log.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete: got %v, want ErrRecordNotFound", err)
	}
}
