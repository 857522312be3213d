package controllers

import (
	"errors"
	"net/http"

	"github.com/D0n4ld07/healthtracker/config"
	"github.com/D0n4ld07/healthtracker/services"
	"github.com/D0n4ld07/healthtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FitnessInput struct {
	Date           string `json:"date" binding:"required"`
	ActivityType   string `json:"activity_type" binding:"required"`
	DurationMin    int    `json:"duration_min" binding:"required,gt=0"`
	CaloriesBurned int    `json:"calories_burned" binding:"gte=0"`
}

func CreateFitness(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input FitnessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	log, err := services.NewFitnessService(config.DB).Create(userID, date, input.ActivityType, input.DurationMin, input.CaloriesBurned)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

func ListFitness(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := services.NewFitnessService(config.DB).List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func DeleteFitness(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.NewFitnessService(config.DB).Delete(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fitness log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
