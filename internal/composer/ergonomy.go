package composer

import "github.com/fretwise/fretwise-api/internal/theory"

const ergonomyBase = 60

// ErgonomyScore rates a voicing's physical playability from 0 to 100.
// The weights deliberately favor closed, low-position, low-stretch
// shapes; downstream ranking depends on them, so change with care.
func ErgonomyScore(v ChordVoicing, tuning []string) int {
	score := ergonomyBase

	gaps := countGaps(v.Frets)
	if gaps == 0 {
		score += 20
	} else {
		score -= 25 * gaps
	}

	minPressed, maxPressed := pressedRange(v.Frets)
	if minPressed > 0 {
		stretch := maxPressed - minPressed
		if stretch > 4 {
			score -= 10 * (stretch - 4)
		} else if stretch <= 2 {
			score += 10
		}

		switch {
		case maxPressed <= 3:
			score += 15
		case maxPressed <= 5:
			score += 10
		case maxPressed <= 7:
			score += 5
		case maxPressed > 9:
			score -= 5
		}

		distinct := distinctPressedFrets(v.Frets)
		if distinct <= 2 {
			score += 10
		} else if distinct > 4 {
			score -= 8 * (distinct - 4)
		}

		if hasBarre(v.Frets) {
			score -= 8
		}
	}

	score += 5 * openStrings(v.Frets)

	if chord, err := theory.ParseChord(v.Chord); err == nil && v.BassNote != "" {
		if theory.PitchClass(v.BassNote) == chord.Root {
			score += 8
		}
	}

	if len(v.Notes) >= 4 {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func distinctPressedFrets(frets []int) int {
	seen := make(map[int]bool, len(frets))
	for _, f := range frets {
		if f > 0 {
			seen[f] = true
		}
	}
	return len(seen)
}

// openStrings counts sounding open strings. Each one thickens the
// voicing for free, wherever it sits in the shape.
func openStrings(frets []int) int {
	n := 0
	for _, f := range frets {
		if f == 0 {
			n++
		}
	}
	return n
}
