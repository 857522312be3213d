package services

import (
	"time"

	"github.com/D0n4ld07/healthtracker/models"
	"github.com/D0n4ld07/healthtracker/utils"

	"gorm.io/gorm"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

func (s *WeightService) Create(userID uint, date time.Time, weightKg, heightCm float64) (*models.WeightLog, error) {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}

	log := models.WeightLog{
		UserID:   userID,
		Date:     utils.DayStart(date),
		WeightKg: weightKg,
		HeightCm: heightCm,
		BMI:      bmi,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *WeightService) List(userID uint) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

// Latest returns the most recent entry, nil when the user has none.
func (s *WeightService) Latest(userID uint) (*models.WeightLog, error) {
	var log models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (s *WeightService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.WeightLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
