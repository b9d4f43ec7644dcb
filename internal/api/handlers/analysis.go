package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fretwise/fretwise-api/internal/logger"
	"github.com/fretwise/fretwise-api/internal/theory"
)

const minTuningStrings = 3

type AnalysisHandler struct{}

func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

type TuningAnalysisRequest struct {
	// Tuning lists open-string pitches with octaves, treble to bass.
	Tuning []string `json:"tuning" binding:"required"`
}

type MarkedAnalysisRequest struct {
	// Notes are pitch classes or pitches selected on the fretboard.
	Notes []string `json:"notes" binding:"required"`
}

type ReanalyzeRequest struct {
	Analysis theory.StringGroupAnalysis `json:"analysis" binding:"required"`
	NewRoot  string                     `json:"new_root" binding:"required"`
}

type DashboardRequest struct {
	Tuning    []string `json:"tuning" binding:"required"`
	ChordName string   `json:"chord_name"`
}

// AnalyzeTuning returns one harmonic analysis per contiguous string
// group of the tuning
func (h *AnalysisHandler) AnalyzeTuning(c *gin.Context) {
	var req TuningAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Tuning) < minTuningStrings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning must have at least 3 strings"})
		return
	}

	start := time.Now()
	analyses := theory.AnalyzeTuningGroups(req.Tuning)
	logger.LogEngineRequest("analyze_tuning", time.Since(start), len(analyses), logger.WithContext(c))

	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

// AnalyzeMarked returns one analysis per candidate root of a marked
// pitch set
func (h *AnalysisHandler) AnalyzeMarked(c *gin.Context) {
	var req MarkedAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Notes) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least 2 notes are required"})
		return
	}

	start := time.Now()
	analyses := theory.AnalyzeMarkedPitchSet(req.Notes)
	logger.LogEngineRequest("analyze_marked", time.Since(start), len(analyses), logger.WithContext(c))

	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

// Reanalyze recomputes an analysis against a user-picked root
func (h *AnalysisHandler) Reanalyze(c *gin.Context) {
	var req ReanalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if theory.PitchClass(req.NewRoot) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid root note"})
		return
	}

	result := theory.Reanalyze(req.Analysis, req.NewRoot)
	c.JSON(http.StatusOK, gin.H{"analysis": result})
}

// Dashboard returns the tuning character dashboard
func (h *AnalysisHandler) Dashboard(c *gin.Context) {
	var req DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Tuning) < minTuningStrings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning must have at least 3 strings"})
		return
	}

	dashboard := theory.AnalyzeTuningDashboard(req.Tuning, req.ChordName)
	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}
