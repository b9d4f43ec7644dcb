// Package tablature renders progressions and voicings as ASCII
// tablature adapted to arbitrary tunings.
package tablature

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fretwise/fretwise-api/internal/composer"
	"github.com/fretwise/fretwise-api/internal/theory"
)

const (
	barWidth     = 8
	barsPerLine  = 4
	wholeNoteDur = "whole"
)

// Bar is one measure of a tablature, holding a single strummed voicing.
type Bar struct {
	Voicing   composer.ChordVoicing `json:"voicing"`
	Duration  string                `json:"duration"`
	BarNumber int                   `json:"bar_number"`
}

// Tablature is a rendered progression.
type Tablature struct {
	ID              string    `json:"id"`
	ProgressionID   string    `json:"progression_id"`
	ProgressionName string    `json:"progression_name"`
	Bars            []Bar     `json:"bars"`
	Tuning          []string  `json:"tuning"`
	ASCII           string    `json:"ascii"`
	CreatedAt       time.Time `json:"created_at"`
}

// Generate renders a progression into a Tablature, one whole-note bar
// per voicing.
func Generate(p composer.Progression) Tablature {
	bars := make([]Bar, len(p.Voicings))
	for i, v := range p.Voicings {
		bars[i] = Bar{Voicing: v, Duration: wholeNoteDur, BarNumber: i + 1}
	}

	t := Tablature{
		ID:              uuid.New().String(),
		ProgressionID:   p.ID,
		ProgressionName: p.Name,
		Bars:            bars,
		Tuning:          p.Tuning,
		CreatedAt:       time.Now().UTC(),
	}
	t.ASCII = FormatASCII(t)
	return t
}

func formatFret(fret int) string {
	if fret < 0 {
		return "x"
	}
	return fmt.Sprintf("%d", fret)
}

func tuningLabel(note string) string {
	return theory.PitchClass(note)
}

func tuningHeader(tuning []string) string {
	labels := make([]string, len(tuning))
	for i, n := range tuning {
		// Bass-to-treble reads more naturally in a header.
		labels[len(tuning)-1-i] = tuningLabel(n)
	}
	return strings.Join(labels, "-")
}

func padEnd(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func centerInBar(s string) string {
	padded := strings.Repeat(" ", (barWidth-len(s))/2) + s
	return padEnd(padded, barWidth-1)
}

// FormatASCII renders the plain text tablature, four bars per line,
// strings ordered as in the tuning (treble on top).
func FormatASCII(t Tablature) string {
	var lines []string
	lines = append(lines, "Tuning: "+tuningHeader(t.Tuning), "")

	for start := 0; start < len(t.Bars); start += barsPerLine {
		end := start + barsPerLine
		if end > len(t.Bars) {
			end = len(t.Bars)
		}
		group := t.Bars[start:end]

		chordLine := "       "
		for _, bar := range group {
			chordLine += padEnd(bar.Voicing.Chord, barWidth)
		}
		lines = append(lines, chordLine)

		for s := range t.Tuning {
			var b strings.Builder
			b.WriteString(padEnd(tuningLabel(t.Tuning[s]), 2))
			b.WriteString("|")
			for _, bar := range group {
				b.WriteString(centerInBar(formatFret(bar.Voicing.Frets[s])))
				b.WriteString("|")
			}
			lines = append(lines, b.String())
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// FormatWithDrones renders the tablature with open strings marked as
// drones and a small stats header.
func FormatWithDrones(t Tablature) string {
	var lines []string
	lines = append(lines,
		"Tuning: "+tuningHeader(t.Tuning),
		fmt.Sprintf("Average ergonomy: %d%%", avgErgonomy(t.Bars)),
		"",
		"Legend: o = open string (drone) | x = muted",
		"",
	)

	for start := 0; start < len(t.Bars); start += barsPerLine {
		end := start + barsPerLine
		if end > len(t.Bars) {
			end = len(t.Bars)
		}
		group := t.Bars[start:end]

		chordLine := "        "
		for _, bar := range group {
			chordLine += padEnd(bar.Voicing.Chord, barWidth)
		}
		lines = append(lines, chordLine)

		for s := range t.Tuning {
			var b strings.Builder
			b.WriteString(" ")
			b.WriteString(padEnd(tuningLabel(t.Tuning[s]), 2))
			b.WriteString("|")
			for _, bar := range group {
				fret := bar.Voicing.Frets[s]
				var mark string
				switch {
				case fret < 0:
					mark = "x"
				case fret == 0:
					mark = "o"
				default:
					mark = fmt.Sprintf("%d", fret)
				}
				b.WriteString(centerInBar(mark))
				b.WriteString("|")
			}
			lines = append(lines, b.String())
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func avgErgonomy(bars []Bar) int {
	if len(bars) == 0 {
		return 0
	}
	total := 0
	for _, bar := range bars {
		total += bar.Voicing.ErgonomyScore
	}
	return int(float64(total)/float64(len(bars)) + 0.5)
}

// ChordDiagram renders a single voicing as a vertical fretboard
// diagram, nut at the top when the shape sits in open position.
func ChordDiagram(v composer.ChordVoicing, tuning []string) string {
	minFret, maxFret := 0, 0
	for _, f := range v.Frets {
		if f <= 0 {
			continue
		}
		if minFret == 0 || f < minFret {
			minFret = f
		}
		if f > maxFret {
			maxFret = f
		}
	}

	startFret := 0
	if minFret > 3 {
		startFret = minFret - 1
	}
	endFret := startFret + 4
	if maxFret > endFret {
		endFret = maxFret
	}

	numStrings := len(tuning)
	var lines []string
	lines = append(lines, "  "+v.Chord, "")

	top := "  "
	for s := 0; s < numStrings; s++ {
		switch {
		case v.Frets[s] < 0:
			top += "x "
		case v.Frets[s] == 0:
			top += "o "
		default:
			top += "  "
		}
	}
	lines = append(lines, top)

	width := numStrings*2 - 1
	if startFret == 0 {
		lines = append(lines, "  "+strings.Repeat("=", width))
	} else {
		lines = append(lines, fmt.Sprintf("%d ", startFret)+strings.Repeat("-", width))
	}

	for fret := startFret + 1; fret <= endFret; fret++ {
		row := "  "
		for s := 0; s < numStrings; s++ {
			if v.Frets[s] == fret {
				row += "* "
			} else {
				row += "| "
			}
		}
		lines = append(lines, row, "  "+strings.Repeat("-", width))
	}

	return strings.Join(lines, "\n")
}
