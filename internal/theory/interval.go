package theory

// Simplified single-octave interval tokens, indexed by semitone count.
// The token grammar matches the usual degree+quality shorthand: number is
// the scale degree, letter is the quality (P perfect, M major, m minor,
// d diminished).
var semitoneIntervals = [12]string{
	"1P", "2m", "2M", "3m", "3M", "4P", "5d", "5P", "6m", "6M", "7m", "7M",
}

// intervalSemitones is the reverse lookup, including the aliases that show
// up in chord-name input ("d5", "4A", "8P").
var intervalSemitones = map[string]int{
	"1P": 0, "2m": 1, "2M": 2, "3m": 3, "3M": 4, "4P": 5,
	"5d": 6, "d5": 6, "4A": 6, "5P": 7, "6m": 8, "6M": 9,
	"7m": 10, "7M": 11, "8P": 0,
}

// intervalNames maps tokens to display names for the tuning dashboard.
var intervalNames = map[string]string{
	"1P": "Unison",
	"2m": "Minor Second",
	"2M": "Major Second",
	"3m": "Minor Third",
	"3M": "Major Third",
	"4P": "Perfect Fourth",
	"4A": "Augmented Fourth",
	"5d": "Diminished Fifth",
	"5P": "Perfect Fifth",
	"6m": "Minor Sixth",
	"6M": "Major Sixth",
	"7m": "Minor Seventh",
	"7M": "Major Seventh",
	"8P": "Octave",
}

// IntervalFromSemitones returns the simplified interval token for a
// semitone distance, taken mod 12.
func IntervalFromSemitones(semitones int) string {
	return semitoneIntervals[((semitones%12)+12)%12]
}

// IntervalBetween computes the simplified ascending interval from one
// pitch class to another. Octave information in the inputs is ignored;
// the result is always the token for the upward distance mod 12.
// Malformed input yields "".
func IntervalBetween(from, to string) string {
	a, errA := ParseNote(from)
	b, errB := ParseNote(to)
	if errA != nil || errB != nil {
		return ""
	}
	return IntervalFromSemitones(b.Semitone() - a.Semitone())
}

// IntervalSemitones returns the semitone count of an interval token, and
// whether the token is known.
func IntervalSemitones(token string) (int, bool) {
	s, ok := intervalSemitones[token]
	return s, ok
}

// IntervalName returns the display name of an interval token, falling
// back to the token itself.
func IntervalName(token string) string {
	if name, ok := intervalNames[token]; ok {
		return name
	}
	return token
}
