package controllers

import (
	"net/http"
	"time"

	"github.com/D0n4ld07/healthtracker/config"
	"github.com/D0n4ld07/healthtracker/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := services.NewDashboardService(config.DB).Summary(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
