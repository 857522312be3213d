package services

import (
	"time"

	"github.com/D0n4ld07/healthtracker/models"
	"github.com/D0n4ld07/healthtracker/utils"

	"gorm.io/gorm"
)

type FitnessService struct{ db *gorm.DB }

func NewFitnessService(db *gorm.DB) *FitnessService { return &FitnessService{db: db} }

func (s *FitnessService) Create(userID uint, date time.Time, activity string, durationMin, caloriesBurned int) (*models.FitnessLog, error) {
	log := models.FitnessLog{
		UserID:         userID,
		Date:           utils.DayStart(date),
		ActivityType:   activity,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *FitnessService) List(userID uint) ([]models.FitnessLog, error) {
	var logs []models.FitnessLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

func (s *FitnessService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FitnessLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
