package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fretwise/fretwise-api/internal/middleware"
	"github.com/fretwise/fretwise-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetProfile returns the current user's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var tuningCount, voicingCount, progressionCount int64
	h.db.Model(&models.Tuning{}).Where("user_id = ?", user.ID).Count(&tuningCount)
	h.db.Model(&models.SavedVoicing{}).Where("user_id = ?", user.ID).Count(&voicingCount)
	h.db.Model(&models.SavedProgression{}).Where("user_id = ?", user.ID).Count(&progressionCount)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"library": gin.H{
			"tunings":      tuningCount,
			"voicings":     voicingCount,
			"progressions": progressionCount,
		},
	})
}
