package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fretwise/fretwise-api/internal/composer"
	"github.com/fretwise/fretwise-api/internal/logger"
	"github.com/fretwise/fretwise-api/internal/metrics"
)

const defaultVoicingResults = 10

type VoicingHandler struct {
	cloudwatch *metrics.Client
}

func NewVoicingHandler(cloudwatch *metrics.Client) *VoicingHandler {
	return &VoicingHandler{cloudwatch: cloudwatch}
}

type VoicingSearchRequest struct {
	Chord      string   `json:"chord" binding:"required"`
	Tuning     []string `json:"tuning" binding:"required"`
	MaxResults int      `json:"max_results"`
}

type VoiceLeadingRequest struct {
	From composer.ChordVoicing `json:"from" binding:"required"`
	To   composer.ChordVoicing `json:"to" binding:"required"`
}

// Search returns playable voicings for a chord on a tuning, best
// ergonomy first. An empty list means the chord is unplayable there.
func (h *VoicingHandler) Search(c *gin.Context) {
	var req VoicingSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Tuning) < minTuningStrings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning must have at least 3 strings"})
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultVoicingResults
	}

	start := time.Now()
	voicings := composer.SearchVoicings(req.Chord, req.Tuning, req.MaxResults)
	duration := time.Since(start)

	logger.LogEngineRequest("voicing_search", duration, len(voicings), logger.WithContext(c))
	if h.cloudwatch != nil {
		h.cloudwatch.RecordVoicingSearch(req.Chord, len(voicings))
	}

	c.JSON(http.StatusOK, gin.H{"voicings": voicings})
}

// VoiceLeading scores the transition between two voicings
func (h *VoicingHandler) VoiceLeading(c *gin.Context) {
	var req VoiceLeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := composer.VoiceLeadingScore(req.From, req.To)
	c.JSON(http.StatusOK, gin.H{"score": score})
}
