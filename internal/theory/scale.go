package theory

import (
	"fmt"
	"strings"
)

var (
	majorScaleSteps = []int{0, 2, 4, 5, 7, 9, 11}
	minorScaleSteps = []int{0, 2, 3, 5, 7, 8, 10}

	// Diatonic chord quality suffix per scale degree.
	majorScaleChords = []string{"", "m", "m", "", "", "m", "dim"}
	minorScaleChords = []string{"m", "dim", "", "m", "m", "", ""}
)

// ParseKey splits a key string like "C major" or "F# minor" into its
// tonic pitch class and mode. A missing mode defaults to major.
func ParseKey(key string) (tonic, mode string, err error) {
	fields := strings.Fields(strings.TrimSpace(key))
	if len(fields) == 0 {
		return "", "", fmt.Errorf("empty key")
	}

	tonic = PitchClass(fields[0])
	if tonic == "" {
		return "", "", fmt.Errorf("invalid key tonic %q", fields[0])
	}

	mode = "major"
	if len(fields) > 1 && strings.Contains(strings.ToLower(fields[1]), "minor") {
		mode = "minor"
	}
	return tonic, mode, nil
}

// ScaleNotes returns the seven pitch classes of the major or natural
// minor scale on tonic.
func ScaleNotes(tonic, mode string) []string {
	root, err := ParseNote(tonic)
	if err != nil {
		return nil
	}

	steps := majorScaleSteps
	if mode == "minor" {
		steps = minorScaleSteps
	}

	notes := make([]string, len(steps))
	for i, step := range steps {
		notes[i] = pitchClassNames[(root.Semitone()+step)%12]
	}
	return notes
}

// ScaleChords returns the diatonic chord per scale degree for a key:
// triads with the standard degree qualities (major: I ii iii IV V vi
// vii°; natural minor: i ii° III iv v VI VII).
func ScaleChords(key string) []string {
	tonic, mode, err := ParseKey(key)
	if err != nil {
		return nil
	}

	qualities := majorScaleChords
	if mode == "minor" {
		qualities = minorScaleChords
	}

	notes := ScaleNotes(tonic, mode)
	chords := make([]string, len(notes))
	for i, n := range notes {
		chords[i] = n + qualities[i]
	}
	return chords
}
