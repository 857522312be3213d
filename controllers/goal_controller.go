package controllers

import (
	"net/http"

	"github.com/D0n4ld07/healthtracker/config"
	"github.com/D0n4ld07/healthtracker/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal, err := services.NewGoalService(config.DB).GetOrCreate(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

type GoalInput struct {
	TargetWeightKg         *float64 `json:"target_weight_kg" binding:"omitempty,gt=0"`
	DailyCalorieTarget     *int     `json:"daily_calorie_intake_target" binding:"omitempty,gt=0"`
	DailyExerciseMinTarget *int     `json:"daily_exercise_minutes_target" binding:"omitempty,gt=0"`
}

func UpdateGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.NewGoalService(config.DB).Upsert(userID,
		input.TargetWeightKg, input.DailyCalorieTarget, input.DailyExerciseMinTarget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}
