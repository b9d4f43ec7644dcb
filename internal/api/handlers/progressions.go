package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fretwise/fretwise-api/internal/composer"
	"github.com/fretwise/fretwise-api/internal/logger"
	"github.com/fretwise/fretwise-api/internal/metrics"
)

const defaultProgressionResults = 5

type ProgressionHandler struct {
	cloudwatch *metrics.Client
}

func NewProgressionHandler(cloudwatch *metrics.Client) *ProgressionHandler {
	return &ProgressionHandler{cloudwatch: cloudwatch}
}

type GenerateProgressionsRequest struct {
	Tuning         []string              `json:"tuning" binding:"required"`
	ChordCount     int                   `json:"chord_count" binding:"required"`
	RequiredChords []string              `json:"required_chords"`
	ContinueFrom   *composer.Progression `json:"continue_from"`
	Key            string                `json:"key"`
	ResultCount    int                   `json:"result_count"`
	// Seed makes generation reproducible when set.
	Seed      *int64                     `json:"seed"`
	Algorithm *composer.AlgorithmOptions `json:"algorithm"`
}

// Generate produces ranked chord progressions voiced on the tuning
func (h *ProgressionHandler) Generate(c *gin.Context) {
	var req GenerateProgressionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Tuning) < minTuningStrings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning must have at least 3 strings"})
		return
	}
	if req.ChordCount < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chord_count must be at least 2"})
		return
	}
	if req.ResultCount <= 0 {
		req.ResultCount = defaultProgressionResults
	}

	algorithm := composer.DefaultAlgorithmOptions()
	if req.Algorithm != nil {
		algorithm = *req.Algorithm
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	opts := composer.GenerateOptions{
		Tuning:         req.Tuning,
		ChordCount:     req.ChordCount,
		RequiredChords: req.RequiredChords,
		ContinueFrom:   req.ContinueFrom,
		Key:            req.Key,
		ResultCount:    req.ResultCount,
		Algorithm:      algorithm,
	}

	start := time.Now()
	progressions := composer.GenerateProgressions(opts, rng)
	duration := time.Since(start)

	logger.LogEngineRequest("generate_progressions", duration, len(progressions), logger.WithContext(c))
	if h.cloudwatch != nil {
		h.cloudwatch.RecordProgressionGeneration(duration, len(progressions) > 0)
	}

	c.JSON(http.StatusOK, gin.H{"progressions": progressions})
}
