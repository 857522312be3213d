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

type SleepInput struct {
	SleepStart string `json:"sleep_start" binding:"required"`
	SleepEnd   string `json:"sleep_end" binding:"required"`
}

func CreateSleep(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := utils.ParseDateTime(input.SleepStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid datetime format"})
		return
	}
	end, err := utils.ParseDateTime(input.SleepEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid datetime format"})
		return
	}

	log, err := services.NewSleepService(config.DB).Create(userID, start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

func ListSleep(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := services.NewSleepService(config.DB).List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func DeleteSleep(c *gin.Context) {
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

	if err := services.NewSleepService(config.DB).Delete(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sleep log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
