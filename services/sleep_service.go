package services

import (
	"errors"
	"math"
	"time"

	"github.com/D0n4ld07/healthtracker/models"

	"gorm.io/gorm"
)

type SleepService struct{ db *gorm.DB }

func NewSleepService(db *gorm.DB) *SleepService { return &SleepService{db: db} }

// Create records a sleep interval. An end before the start is taken to
// cross midnight and rolls forward one day.
func (s *SleepService) Create(userID uint, start, end time.Time) (*models.SleepLog, error) {
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	hours := math.Round(end.Sub(start).Hours()*100) / 100
	if hours <= 0 {
		return nil, errors.New("sleep duration must be positive")
	}

	log := models.SleepLog{
		UserID:        userID,
		SleepStart:    start,
		SleepEnd:      end,
		DurationHours: hours,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SleepService) List(userID uint) ([]models.SleepLog, error) {
	var logs []models.SleepLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("sleep_start DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

func (s *SleepService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SleepLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
