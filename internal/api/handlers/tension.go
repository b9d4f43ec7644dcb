package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretwise/fretwise-api/internal/theory"
)

const defaultScaleLength = 25.5

type TensionHandler struct{}

func NewTensionHandler() *TensionHandler {
	return &TensionHandler{}
}

type TensionRequest struct {
	// Tuning lists open-string pitches with octaves, treble to bass.
	Tuning []string `json:"tuning" binding:"required"`
	// Gauges are string gauges in inches, aligned with Tuning.
	Gauges []float64 `json:"gauges" binding:"required"`
	// ScaleLength in inches; defaults to 25.5.
	ScaleLength float64 `json:"scale_length"`
}

type StringTensionResult struct {
	Note    string  `json:"note"`
	Gauge   float64 `json:"gauge"`
	Tension float64 `json:"tension_lbs"`
	Status  string  `json:"status"`
}

// Analyze estimates per-string tension for a tuning and gauge set
func (h *TensionHandler) Analyze(c *gin.Context) {
	var req TensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Tuning) != len(req.Gauges) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tuning and gauges must have the same length"})
		return
	}
	if req.ScaleLength <= 0 {
		req.ScaleLength = defaultScaleLength
	}

	results := make([]StringTensionResult, len(req.Tuning))
	total := 0.0
	for i, note := range req.Tuning {
		tension := theory.StringTension(req.Gauges[i], req.ScaleLength, note)
		results[i] = StringTensionResult{
			Note:    note,
			Gauge:   req.Gauges[i],
			Tension: tension,
			Status:  theory.TensionStatus(tension),
		}
		total += tension
	}

	c.JSON(http.StatusOK, gin.H{
		"strings":           results,
		"total_tension_lbs": total,
		"scale_length":      req.ScaleLength,
	})
}
