package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "disabled"
	}

	status := http.StatusOK
	if dbStatus == "unreachable" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": "healthy",
		"database": gin.H{
			"status": dbStatus,
		},
	})
}
