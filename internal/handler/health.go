package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "connected"
	if err := h.store.Ping(c.Request.Context()); err != nil {
		status = "unhealthy"
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Restaurant Management API",
		"version": "1.0.0",
		"health":  "/health",
	})
}
