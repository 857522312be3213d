package services

import (
	"fmt"
	"math"
	"time"

	"github.com/D0n4ld07/healthtracker/models"
	"github.com/D0n4ld07/healthtracker/utils"

	"gorm.io/gorm"
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// GoalDeltas compare targets against observed values. Nil means the
// corresponding target is unset (or, for weight, no weight was logged).
type GoalDeltas struct {
	Weight   *float64 `json:"weight"`
	Calorie  *int     `json:"calorie"`
	Exercise *int     `json:"exercise"`
}

type DashboardSummary struct {
	Date            string       `json:"date"`
	CaloriesIn      int          `json:"calories_in"`
	CaloriesBurned  int          `json:"calories_burned"`
	ExerciseMinutes int          `json:"exercise_minutes"`
	AvgSleepHours   float64      `json:"avg_sleep_hours"` // trailing 7 days
	LatestBMI       *float64     `json:"latest_bmi"`
	Goals           *models.Goal `json:"goals"`
	Deltas          GoalDeltas   `json:"deltas"`
	Suggestions     []string     `json:"suggestions"`
}

// Summary assembles the dashboard for the day containing now: today's
// intake/burn/exercise totals, the trailing-7-day sleep average
// (inclusive of today), the latest BMI, and goal deltas with their
// advisory texts.
func (s *DashboardService) Summary(userID uint, now time.Time) (*DashboardSummary, error) {
	dayStart := utils.DayStart(now)
	dayEnd := utils.DayEnd(now)

	var caloriesIn int
	if err := s.db.Model(&models.MealLog{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart, dayEnd).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&caloriesIn).Error; err != nil {
		return nil, err
	}

	var fitness struct {
		Burned int
		Mins   int
	}
	if err := s.db.Model(&models.FitnessLog{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart, dayEnd).
		Select("COALESCE(SUM(calories_burned), 0) AS burned, COALESCE(SUM(duration_min), 0) AS mins").
		Scan(&fitness).Error; err != nil {
		return nil, err
	}

	// Trailing 7 days including today, bucketed by when sleep ended.
	sleepFrom := utils.DayStart(now.AddDate(0, 0, -6))
	var avgSleep float64
	if err := s.db.Model(&models.SleepLog{}).
		Where("user_id = ? AND sleep_end >= ?", userID, sleepFrom).
		Select("COALESCE(AVG(duration_hours), 0)").
		Scan(&avgSleep).Error; err != nil {
		return nil, err
	}

	latest, err := NewWeightService(s.db).Latest(userID)
	if err != nil {
		return nil, err
	}

	goal, err := NewGoalService(s.db).GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	out := &DashboardSummary{
		Date:            dayStart.Format(utils.DateLayout),
		CaloriesIn:      caloriesIn,
		CaloriesBurned:  fitness.Burned,
		ExerciseMinutes: fitness.Mins,
		AvgSleepHours:   round2(avgSleep),
		Goals:           goal,
		Suggestions:     []string{},
	}
	if latest != nil {
		bmi := latest.BMI
		out.LatestBMI = &bmi
	}

	if goal.TargetWeightKg != nil && latest != nil {
		d := round2(latest.WeightKg - *goal.TargetWeightKg)
		out.Deltas.Weight = &d
		if d > 0 {
			out.Suggestions = append(out.Suggestions,
				"Aim for a daily calorie deficit of 300–500 kcal and do 30–45 minutes of moderate cardio today.")
		} else if d < 0 {
			out.Suggestions = append(out.Suggestions,
				"Aim for a small surplus of +200–300 kcal and focus on strength training.")
		}
	}

	if goal.DailyCalorieTarget != nil {
		d := *goal.DailyCalorieTarget - caloriesIn
		out.Deltas.Calorie = &d
		if d < 0 {
			out.Suggestions = append(out.Suggestions,
				"You've exceeded today's intake target; go light for dinner and add some walking.")
		}
	}

	if goal.DailyExerciseMinTarget != nil {
		d := *goal.DailyExerciseMinTarget - fitness.Mins
		out.Deltas.Exercise = &d
		if d > 0 {
			out.Suggestions = append(out.Suggestions,
				fmt.Sprintf("You still need %d minutes of exercise today (e.g., brisk walk/jog/cycle).", d))
		}
	}

	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
