package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fretwise/fretwise-api/internal/composer"
	"github.com/fretwise/fretwise-api/internal/middleware"
	"github.com/fretwise/fretwise-api/internal/models"
	"github.com/fretwise/fretwise-api/internal/theory"
)

// LibraryHandler manages the user's saved tunings, voicings and
// progressions.
type LibraryHandler struct {
	db *gorm.DB
}

func NewLibraryHandler(db *gorm.DB) *LibraryHandler {
	return &LibraryHandler{db: db}
}

type SaveTuningRequest struct {
	Name    string   `json:"name" binding:"required"`
	Strings []string `json:"strings" binding:"required"`
}

type SaveVoicingRequest struct {
	ChordName string   `json:"chord_name" binding:"required"`
	Tuning    []string `json:"tuning" binding:"required"`
	Frets     []int    `json:"frets" binding:"required"`
	Ergonomy  int      `json:"ergonomy"`
}

type SaveProgressionRequest struct {
	Name        string               `json:"name" binding:"required"`
	Progression composer.Progression `json:"progression" binding:"required"`
}

type tuningResponse struct {
	models.Tuning
	StringList []string `json:"strings"`
}

// ListTunings returns the user's saved tunings
func (h *LibraryHandler) ListTunings(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var tunings []models.Tuning
	if err := h.db.Where("user_id = ?", userID).Order("created_at desc").Find(&tunings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tunings"})
		return
	}

	out := make([]tuningResponse, 0, len(tunings))
	for _, t := range tunings {
		strings, err := t.GetStrings()
		if err != nil {
			continue
		}
		out = append(out, tuningResponse{Tuning: t, StringList: strings})
	}

	c.JSON(http.StatusOK, gin.H{"tunings": out})
}

// SaveTuning stores a tuning in the user's library
func (h *LibraryHandler) SaveTuning(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req SaveTuningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Strings) < minTuningStrings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning must have at least 3 strings"})
		return
	}
	for _, s := range req.Strings {
		if theory.PitchClass(s) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note: " + s})
			return
		}
	}

	tuning := models.Tuning{UserID: userID, Name: req.Name}
	if err := tuning.SetStrings(req.Strings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode tuning"})
		return
	}

	if err := h.db.Create(&tuning).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tuning"})
		return
	}

	c.JSON(http.StatusCreated, tuningResponse{Tuning: tuning, StringList: req.Strings})
}

// DeleteTuning removes a tuning from the user's library
func (h *LibraryHandler) DeleteTuning(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	result := h.db.Where("user_id = ?", userID).Delete(&models.Tuning{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tuning"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tuning not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tuning deleted"})
}

// ListVoicings returns the user's saved voicings
func (h *LibraryHandler) ListVoicings(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var voicings []models.SavedVoicing
	if err := h.db.Where("user_id = ?", userID).Order("created_at desc").Find(&voicings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load voicings"})
		return
	}

	type voicingResponse struct {
		models.SavedVoicing
		TuningList []string `json:"tuning"`
		FretList   []int    `json:"frets"`
	}

	out := make([]voicingResponse, 0, len(voicings))
	for _, v := range voicings {
		tuning, err := v.GetTuning()
		if err != nil {
			continue
		}
		frets, err := v.GetFrets()
		if err != nil {
			continue
		}
		out = append(out, voicingResponse{SavedVoicing: v, TuningList: tuning, FretList: frets})
	}

	c.JSON(http.StatusOK, gin.H{"voicings": out})
}

// SaveVoicing stores a chord voicing in the user's library
func (h *LibraryHandler) SaveVoicing(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req SaveVoicingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Frets) != len(req.Tuning) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voicing and tuning must have the same string count"})
		return
	}
	if _, err := theory.ParseChord(req.ChordName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chord name: " + req.ChordName})
		return
	}

	voicing := models.SavedVoicing{
		UserID:    userID,
		ChordName: req.ChordName,
		Ergonomy:  req.Ergonomy,
	}
	if err := voicing.SetTuning(req.Tuning); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode tuning"})
		return
	}
	if err := voicing.SetFrets(req.Frets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode frets"})
		return
	}

	if err := h.db.Create(&voicing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save voicing"})
		return
	}

	c.JSON(http.StatusCreated, voicing)
}

// DeleteVoicing removes a voicing from the user's library
func (h *LibraryHandler) DeleteVoicing(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	result := h.db.Where("user_id = ?", userID).Delete(&models.SavedVoicing{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voicing"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Voicing not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Voicing deleted"})
}

// ListProgressions returns the user's saved progressions
func (h *LibraryHandler) ListProgressions(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var progressions []models.SavedProgression
	if err := h.db.Where("user_id = ?", userID).Order("created_at desc").Find(&progressions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progressions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progressions": progressions})
}

// SaveProgression stores a generated progression in the user's library
func (h *LibraryHandler) SaveProgression(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req SaveProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Progression.Voicings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Progression has no voicings"})
		return
	}

	progression := models.SavedProgression{UserID: userID, Name: req.Name}
	if err := progression.SetPayload(req.Progression); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode progression"})
		return
	}

	if err := h.db.Create(&progression).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progression"})
		return
	}

	c.JSON(http.StatusCreated, progression)
}

// DeleteProgression removes a progression from the user's library
func (h *LibraryHandler) DeleteProgression(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	result := h.db.Where("user_id = ?", userID).Delete(&models.SavedProgression{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete progression"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Progression not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progression deleted"})
}
