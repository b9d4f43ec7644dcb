package composer

import "github.com/fretwise/fretwise-api/internal/theory"

// VoiceLeadingScore rates the smoothness of moving from one voicing to
// the next, 0 to 100. Voices are aligned from the bass end of each
// note list; the score decays 10 points per average semitone of
// movement. Either voicing having no sounding notes yields 0.
func VoiceLeadingScore(from, to ChordVoicing) float64 {
	if len(from.Notes) == 0 || len(to.Notes) == 0 {
		return 0
	}

	voices := len(from.Notes)
	if len(to.Notes) < voices {
		voices = len(to.Notes)
	}

	total := 0
	for i := 1; i <= voices; i++ {
		a := from.Notes[len(from.Notes)-i]
		b := to.Notes[len(to.Notes)-i]
		total += theory.SemitoneDistance(a, b)
	}

	avg := float64(total) / float64(voices)
	score := 100 - 10*avg
	if score < 0 {
		return 0
	}
	return score
}
