package services

import (
	"errors"

	"github.com/D0n4ld07/healthtracker/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GetOrCreate returns the user's goal row, creating an empty one on
// first access. Each user has at most one row.
func (s *GoalService) GetOrCreate(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			goal = models.Goal{UserID: userID}
			if err := s.db.Create(&goal).Error; err != nil {
				return nil, err
			}
			return &goal, nil
		}
		return nil, err
	}
	return &goal, nil
}

// Upsert replaces all targets at once; nil clears a target.
func (s *GoalService) Upsert(userID uint, targetWeightKg *float64, calorieTarget, exerciseMinTarget *int) (*models.Goal, error) {
	goal, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	goal.TargetWeightKg = targetWeightKg
	goal.DailyCalorieTarget = calorieTarget
	goal.DailyExerciseMinTarget = exerciseMinTarget

	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}
