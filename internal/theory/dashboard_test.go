package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAdjacentIntervals(t *testing.T) {
	intervals := CalculateAdjacentIntervals(standardTuning)
	require.Len(t, intervals, 5)

	// Standard tuning stacks fourths with one major third at B-G.
	expected := []string{"4P", "3M", "4P", "4P", "4P"}
	for i, a := range intervals {
		assert.Equal(t, expected[i], a.Interval, "pair %d", i)
		assert.Equal(t, i, a.FromString)
		assert.Equal(t, i+1, a.ToString)
	}

	assert.Equal(t, "Perfect Fourth", intervals[0].IntervalName)
	assert.Equal(t, "stable", intervals[0].Quality)
	assert.Equal(t, 5, intervals[0].Semitones)
	assert.Equal(t, "bright", intervals[1].Quality)
	assert.Equal(t, 4, intervals[1].Semitones)
}

func TestDetectOpenChord(t *testing.T) {
	assert.Equal(t, "Open D", DetectOpenChord(openDTuning))

	// Standard tuning has five distinct pitch classes, too many for a
	// clean open chord.
	assert.Equal(t, "", DetectOpenChord(standardTuning))

	assert.Equal(t, "", DetectOpenChord([]string{"E4", "A4"}))
}

func TestIsOpenTuning(t *testing.T) {
	assert.True(t, IsOpenTuning(openDTuning))
	assert.False(t, IsOpenTuning(standardTuning))
}

func TestTuningRange(t *testing.T) {
	assert.Equal(t, "E2 - E4 (2 octaves)", TuningRange(standardTuning))
	assert.Equal(t, "D2 - D4 (2 octaves)", TuningRange(openDTuning))
	assert.Equal(t, "", TuningRange(nil))

	// Partial octave remainder.
	assert.Equal(t, "C3 - E4 (1 octave + 4 st)", TuningRange([]string{"E4", "G3", "C3"}))
}

func TestAnalyzeTuningDashboard_Standard(t *testing.T) {
	dash := AnalyzeTuningDashboard(standardTuning, "")

	assert.False(t, dash.IsOpenTuning)
	assert.Empty(t, dash.OpenChordName)
	assert.Len(t, dash.AdjacentIntervals, 5)
	assert.Equal(t, "Folk / Acoustic", dash.Mood.Primary)
	assert.Contains(t, dash.Characteristics, "Quartal")
	assert.Contains(t, dash.Characteristics, "Stable")
	assert.Equal(t, "E2 - E4 (2 octaves)", dash.TotalRange)
}

func TestAnalyzeTuningDashboard_ExternalChordName(t *testing.T) {
	// A name resolved by harmonic analysis takes precedence over the
	// internal open-chord detection.
	dash := AnalyzeTuningDashboard(openDTuning, "D")
	assert.True(t, dash.IsOpenTuning)
	assert.Equal(t, "Open D", dash.OpenChordName)

	// A complex name does not read as an open tuning.
	dash = AnalyzeTuningDashboard(standardTuning, "Em7")
	assert.False(t, dash.IsOpenTuning)
	assert.Equal(t, "Em7", dash.OpenChordName)

	// Em7 contains a seventh, which the mood patterns read as jazz
	// territory.
	assert.Equal(t, "Jazzy", dash.Mood.Primary)
}

func TestTuningMoodFallback(t *testing.T) {
	// Every tuning gets a mood; the final pattern always matches.
	dash := AnalyzeTuningDashboard([]string{"C4", "B3", "A#3"}, "")
	assert.NotEmpty(t, dash.Mood.Primary)
	assert.NotEmpty(t, dash.Mood.Description)
}
