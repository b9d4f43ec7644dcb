package tablature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretwise/fretwise-api/internal/composer"
)

var standardTuning = []string{"E4", "B3", "G3", "D3", "A2", "E2"}

func sampleProgression() composer.Progression {
	return composer.Progression{
		ID:     "prog-1",
		Name:   "C - G",
		Tuning: standardTuning,
		Voicings: []composer.ChordVoicing{
			{
				Chord:         "C",
				Frets:         []int{0, 1, 0, 2, 3, -1},
				ErgonomyScore: 90,
				Notes:         []string{"E4", "C4", "G3", "E3", "C3"},
				BassNote:      "C3",
			},
			{
				Chord:         "G",
				Frets:         []int{3, 0, 0, 0, 2, 3},
				ErgonomyScore: 80,
				Notes:         []string{"G4", "B3", "G3", "D3", "B2", "G2"},
				BassNote:      "G2",
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	tab := Generate(sampleProgression())

	assert.Equal(t, "prog-1", tab.ProgressionID)
	assert.Equal(t, "C - G", tab.ProgressionName)
	assert.NotEmpty(t, tab.ID)
	assert.Equal(t, standardTuning, tab.Tuning)

	require.Len(t, tab.Bars, 2)
	assert.Equal(t, 1, tab.Bars[0].BarNumber)
	assert.Equal(t, 2, tab.Bars[1].BarNumber)
	assert.Equal(t, "whole", tab.Bars[0].Duration)
	assert.Equal(t, "C", tab.Bars[0].Voicing.Chord)
	assert.Equal(t, "G", tab.Bars[1].Voicing.Chord)

	assert.NotEmpty(t, tab.ASCII)
}

func TestFormatASCII(t *testing.T) {
	tab := Generate(sampleProgression())
	ascii := tab.ASCII

	// Header reads bass to treble.
	assert.Contains(t, ascii, "Tuning: E-A-D-G-B-E")
	assert.Contains(t, ascii, "C")
	assert.Contains(t, ascii, "G")
	// Muted strings render as x.
	assert.Contains(t, ascii, "x")

	// One line per string plus header, chord line and spacers.
	lines := strings.Split(ascii, "\n")
	stringLines := 0
	for _, l := range lines {
		if strings.Contains(l, "|") {
			stringLines++
		}
	}
	assert.Equal(t, len(standardTuning), stringLines)
}

func TestFormatASCII_MultipleLines(t *testing.T) {
	p := sampleProgression()
	// Six bars wrap onto a second system at four bars per line.
	for len(p.Voicings) < 6 {
		p.Voicings = append(p.Voicings, p.Voicings[0])
	}
	tab := Generate(p)

	lines := strings.Split(tab.ASCII, "\n")
	stringLines := 0
	for _, l := range lines {
		if strings.Contains(l, "|") {
			stringLines++
		}
	}
	assert.Equal(t, 2*len(standardTuning), stringLines)
}

func TestFormatWithDrones(t *testing.T) {
	tab := Generate(sampleProgression())
	out := FormatWithDrones(tab)

	assert.Contains(t, out, "Tuning: E-A-D-G-B-E")
	assert.Contains(t, out, "Average ergonomy: 85%")
	assert.Contains(t, out, "Legend: o = open string (drone) | x = muted")
	// Open strings render as o.
	assert.Contains(t, out, "o")
}

func TestChordDiagram_OpenPosition(t *testing.T) {
	v := sampleProgression().Voicings[0]
	diagram := ChordDiagram(v, standardTuning)

	lines := strings.Split(diagram, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "  C", lines[0])
	// Open-position shapes draw the nut.
	assert.Contains(t, diagram, "=")
	assert.Contains(t, diagram, "*")
	assert.Contains(t, diagram, "x")
	assert.Contains(t, diagram, "o")
}

func TestChordDiagram_HighPosition(t *testing.T) {
	v := composer.ChordVoicing{
		Chord: "C",
		Frets: []int{8, 5, 5, 5, 7, 8},
	}
	diagram := ChordDiagram(v, standardTuning)

	// Shapes above the third fret start one fret below the lowest
	// pressed fret, with the fret number in the margin instead of a nut.
	assert.Contains(t, diagram, "4 ")
	assert.NotContains(t, diagram, "=")
}
