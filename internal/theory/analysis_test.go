package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tunings are ordered treble to bass throughout; the last string is the
// lowest pitch.
var (
	standardTuning = []string{"E4", "B3", "G3", "D3", "A2", "E2"}
	openDTuning    = []string{"D4", "A3", "F#3", "D3", "A2", "D2"}
)

func TestAnalyzeTuningGroups_Standard(t *testing.T) {
	results := AnalyzeTuningGroups(standardTuning)
	require.Len(t, results, 4) // sizes 3 through 6

	for i, r := range results {
		size := i + 3
		assert.Len(t, r.Notes, size)
		assert.Len(t, r.Intervals, size)
		assert.Len(t, r.StringIndices, size)
		// Root is the lowest string of the group.
		assert.Equal(t, PitchClass(standardTuning[size-1]), r.Root)
		assert.Equal(t, "1P", r.Intervals[size-1])
		assert.NotEmpty(t, r.ChordName)
		assert.NotEmpty(t, r.EmotionalTag)
	}

	// The full set E4 B3 G3 D3 A2 E2 rings as an E minor seventh.
	full := results[len(results)-1]
	assert.Equal(t, "Em7", full.ChordName)
	assert.Equal(t, "E", full.Root)
	assert.Equal(t, InversionRoot, full.Inversion)
	assert.Equal(t, "Elegant / Lo-Fi", full.EmotionalTag)
}

func TestAnalyzeTuningGroups_OpenD(t *testing.T) {
	results := AnalyzeTuningGroups(openDTuning)
	require.NotEmpty(t, results)

	full := results[len(results)-1]
	assert.Equal(t, "D", full.ChordName)
	assert.Equal(t, "D", full.Root)
	assert.Equal(t, InversionRoot, full.Inversion)
	assert.Equal(t, "Experimental", full.EmotionalTag)
}

func TestAnalyzeMarkedPitchSet(t *testing.T) {
	results := AnalyzeMarkedPitchSet([]string{"C", "E", "G"})
	require.Len(t, results, 3) // one analysis per candidate root

	assert.Equal(t, "C", results[0].Root)
	assert.Equal(t, "C", results[0].ChordName)

	// E and G cannot name this set as a chord; the unresolved marker
	// flags them instead of renaming the detection's tonic.
	assert.Equal(t, "E", results[1].Root)
	assert.Equal(t, "E"+UnresolvedMarker, results[1].ChordName)
	assert.Equal(t, "G", results[2].Root)
	assert.Equal(t, "G"+UnresolvedMarker, results[2].ChordName)

	// Pitch classes only: inversion detection must stay silent.
	for _, r := range results {
		assert.Empty(t, r.Inversion)
	}
}

func TestAnalyzeMarkedPitchSet_WithOctaves(t *testing.T) {
	results := AnalyzeMarkedPitchSet([]string{"E3", "C4", "G4"})
	require.Len(t, results, 3)

	// Root C with E in the bass.
	var cResult *StringGroupAnalysis
	for i := range results {
		if results[i].Root == "C" {
			cResult = &results[i]
		}
	}
	require.NotNil(t, cResult)
	assert.Equal(t, "C", cResult.ChordName)
	assert.Equal(t, InversionFirst, cResult.Inversion)
}

func TestAnalyzeMarkedPitchSet_TooFewNotes(t *testing.T) {
	assert.Nil(t, AnalyzeMarkedPitchSet([]string{"C"}))
	assert.Nil(t, AnalyzeMarkedPitchSet(nil))
}

func TestReanalyze(t *testing.T) {
	original := StringGroupAnalysis{
		StringIndices: []int{0, 1, 2},
		Notes:         []string{"C4", "E4", "G4"},
		Intervals:     []string{"1P", "3M", "5P"},
		ChordName:     "C",
		Root:          "C",
	}

	// No chord reads this set from E, so it falls back to a slash chord.
	asE := Reanalyze(original, "E")
	assert.Equal(t, "C/E", asE.ChordName)
	assert.Equal(t, "E", asE.Root)
	assert.Equal(t, "1P", asE.Intervals[1])

	asG := Reanalyze(original, "G")
	assert.Equal(t, "C/G", asG.ChordName)
	assert.Equal(t, "G", asG.Root)

	// Returning to the original root resolves cleanly again.
	back := Reanalyze(asE, "C")
	assert.Equal(t, "C", back.ChordName)
	assert.Equal(t, "C", back.Root)

	// The original is never mutated.
	assert.Equal(t, "C", original.ChordName)
	assert.Equal(t, []string{"1P", "3M", "5P"}, original.Intervals)
}

func TestEmotionalTagOrdering(t *testing.T) {
	tests := []struct {
		name      string
		chordName string
		intervals []string
		expected  string
	}{
		{name: "7sus4 before sus4", chordName: "A7sus4", expected: "Dominant Tension / Bluesy / Funk"},
		{name: "sus4", chordName: "Dsus4", expected: "Open / Folk / Spiritual"},
		{name: "sus2", chordName: "Asus2", expected: "Dreamlike / Nostalgic / Modern"},
		{name: "maj9", chordName: "Cmaj9", expected: "Nostalgic / Midwest Emo"},
		{name: "m9", chordName: "Em9", expected: "Deep / Neo-Soul"},
		{name: "dim", chordName: "Bdim", expected: "Tense / Dark"},
		{name: "maj7", chordName: "Fmaj7", expected: "Dreamy / Jazz"},
		{name: "m7", chordName: "Am7", expected: "Elegant / Lo-Fi"},
		{name: "minor inversion", chordName: "Am/C", intervals: []string{"1P", "3m", "5P"}, expected: "Dramatic / Romantic (Minor Inv)"},
		{name: "major inversion", chordName: "C/E", intervals: []string{"1P", "3M", "5P"}, expected: "Warm / Pastoral (Major Inv)"},
		{name: "plain triad", chordName: "C", expected: "Experimental"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, emotionalTag(tt.chordName, tt.intervals))
		})
	}
}
