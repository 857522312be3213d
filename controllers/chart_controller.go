package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/D0n4ld07/healthtracker/config"
	"github.com/D0n4ld07/healthtracker/services"
	"github.com/D0n4ld07/healthtracker/utils"

	"github.com/gin-gonic/gin"
)

// GetChartData serves /api/charts/:kind with range, group_by, start,
// end and metric query parameters.
func GetChartData(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	kind := c.Param("kind")
	rangeKey := c.DefaultQuery("range", "all")
	groupBy := c.DefaultQuery("group_by", "day")
	metric := c.DefaultQuery("metric", "calories")

	bound, err := utils.ResolveRange(rangeKey, c.Query("start"), c.Query("end"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := services.NewChartService(config.DB).Data(userID, kind, rangeKey, groupBy, metric, bound)
	if err != nil {
		if errors.Is(err, services.ErrUnknownChartKind) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown chart kind"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}
