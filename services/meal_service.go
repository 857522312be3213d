package services

import (
	"time"

	"github.com/D0n4ld07/healthtracker/models"
	"github.com/D0n4ld07/healthtracker/utils"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

func (s *MealService) Create(userID uint, date time.Time, mealType, food string, calories int) (*models.MealLog, error) {
	log := models.MealLog{
		UserID:   userID,
		Date:     utils.DayStart(date),
		MealType: mealType,
		Food:     food,
		Calories: calories,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *MealService) List(userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error
	return logs, err
}

// Delete removes a single log, scoped to its owner.
func (s *MealService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
