package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/database"
	"github.com/batonworks/baton/pkg/version"
)

// health handles GET /health, the liveness probe
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": version.Full(),
	})
}

// ready handles GET /health/ready: database reachability plus worker pool
// status
func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	body := gin.H{
		"database": dbHealth,
		"version":  version.Full(),
	}
	if s.pool != nil {
		body["queue"] = s.pool.Health()
	}

	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "healthy"
	c.JSON(http.StatusOK, body)
}
