// Package composer implements the fretboard side of the engine: voicing
// search over a tuning, ergonomy and voice-leading scoring, and the
// progression generator that combines them under user constraints.
package composer

// Position range values for AlgorithmOptions.PositionRange.
const (
	PositionLow  = "low"  // highest pressed fret <= 5
	PositionHigh = "high" // highest pressed fret > 5
	PositionAny  = "any"
)

// Chord complexity tiers.
const (
	ComplexityTriads   = "triads"
	ComplexitySevenths = "sevenths"
	ComplexityExtended = "extended"
	ComplexityJazz     = "jazz"
)

// AlgorithmOptions tunes voicing selection and progression assembly.
// MaxGaps and MaxOpenStrings are hard limits that are never relaxed;
// everything else is a soft preference the generator may loosen when a
// chord would otherwise be unvoiceable.
type AlgorithmOptions struct {
	MaxOpenStrings int    `json:"max_open_strings"`
	MaxGaps        int    `json:"max_gaps"`
	PositionRange  string `json:"position_range"` // low, high, any
	MaxStretch     int    `json:"max_stretch"`
	// VoiceLeadingWeight is the percentage (0-100) given to voice leading
	// vs ergonomy when choosing among valid voicings.
	VoiceLeadingWeight int  `json:"voice_leading_weight"`
	BassIsRoot         bool `json:"bass_is_root"`
	MinNotesPerChord   int  `json:"min_notes_per_chord"`
	AllowBarreChords   bool `json:"allow_barre_chords"`

	// Chord extension controls.
	ChordComplexity      string   `json:"chord_complexity"` // triads, sevenths, extended, jazz
	ExtensionProbability int      `json:"extension_probability"`
	AllowedExtensions    []string `json:"allowed_extensions"`
	PreferSus            bool     `json:"prefer_sus"`
}

// chordExtensions lists the extensions unlocked per complexity tier.
var chordExtensions = map[string][]string{
	ComplexityTriads:   {},
	ComplexitySevenths: {"7", "maj7", "m7", "dim7", "m7b5"},
	ComplexityExtended: {"7", "maj7", "m7", "9", "maj9", "m9", "add9", "11", "add11"},
	ComplexityJazz:     {"7", "maj7", "m7", "9", "maj9", "m9", "11", "m11", "13", "maj13", "7#9", "7b9", "7#11", "7alt"},
}

// DefaultAlgorithmOptions returns the default algorithm configuration:
// closed voicings, open strings unbounded, no extensions.
func DefaultAlgorithmOptions() AlgorithmOptions {
	return AlgorithmOptions{
		MaxOpenStrings:       6,
		MaxGaps:              0,
		PositionRange:        PositionAny,
		MaxStretch:           4,
		VoiceLeadingWeight:   50,
		BassIsRoot:           false,
		MinNotesPerChord:     3,
		AllowBarreChords:     true,
		ChordComplexity:      ComplexityTriads,
		ExtensionProbability: 0,
		AllowedExtensions:    nil,
		PreferSus:            false,
	}
}
