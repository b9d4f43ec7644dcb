package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretwise/fretwise-api/internal/composer"
	"github.com/fretwise/fretwise-api/internal/tablature"
)

type TablatureHandler struct{}

func NewTablatureHandler() *TablatureHandler {
	return &TablatureHandler{}
}

type TablatureRequest struct {
	Progression composer.Progression `json:"progression" binding:"required"`
	// WithDrones switches to the rendering that marks open strings.
	WithDrones bool `json:"with_drones"`
}

type ChordDiagramRequest struct {
	Voicing composer.ChordVoicing `json:"voicing" binding:"required"`
	Tuning  []string              `json:"tuning" binding:"required"`
}

// Render generates ASCII tablature for a progression
func (h *TablatureHandler) Render(c *gin.Context) {
	var req TablatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Progression.Voicings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Progression has no voicings"})
		return
	}
	for _, v := range req.Progression.Voicings {
		if len(v.Frets) != len(req.Progression.Tuning) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Every voicing must have one fret entry per tuning string"})
			return
		}
	}

	tab := tablature.Generate(req.Progression)
	if req.WithDrones {
		tab.ASCII = tablature.FormatWithDrones(tab)
	}

	c.JSON(http.StatusOK, gin.H{"tablature": tab})
}

// Diagram renders a single voicing as a fretboard diagram
func (h *TablatureHandler) Diagram(c *gin.Context) {
	var req ChordDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Voicing.Frets) != len(req.Tuning) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voicing and tuning must have the same string count"})
		return
	}

	diagram := tablature.ChordDiagram(req.Voicing, req.Tuning)
	c.JSON(http.StatusOK, gin.H{"diagram": diagram})
}
