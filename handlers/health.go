package handlers

import (
	"net/http"

	"nepwork/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last snapshot of the backing stores.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	if (health.Mongo != nil && !*health.Mongo) || (health.Redis != nil && !*health.Redis) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": health})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm NepWork", "health": health})
}
