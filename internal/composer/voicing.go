package composer

import (
	"sort"

	"github.com/fretwise/fretwise-api/internal/theory"
)

const (
	// MutedFret marks a string that is not played.
	MutedFret = -1

	maxFret = 12
	// Fretted candidates per string are capped to keep the search
	// tractable; the bound is loose because the ergonomy filter does the
	// real pruning afterwards.
	maxOptionsPerString = 10
	// During generation a fretted candidate may sit this far from the
	// already-chosen frets. Final stretch limits are enforced later.
	generationStretch = 6
	// The raw search collects this many times the requested results
	// before ranking and truncating.
	overgenerationFactor = 5

	minSoundingStrings = 3
)

// ChordVoicing is one playable fingering of a chord. Frets holds one
// entry per string (-1 muted, 0 open, >0 fretted); Notes lists sounding
// pitches in string order, so the last entry is the bass on a treble-to-
// bass tuning.
type ChordVoicing struct {
	Chord         string   `json:"chord"`
	Frets         []int    `json:"frets"`
	Fingers       []int    `json:"fingers"`
	ErgonomyScore int      `json:"ergonomy_score"`
	DroneStrings  []int    `json:"drone_strings"`
	BassNote      string   `json:"bass_note"`
	Notes         []string `json:"notes"`
}

// SearchVoicings enumerates playable fingerings of chordName on tuning
// and returns up to maxResults, best ergonomy first. An empty result is a
// valid outcome meaning the chord is unplayable under these constraints,
// not an error.
func SearchVoicings(chordName string, tuning []string, maxResults int) []ChordVoicing {
	if maxResults <= 0 || len(tuning) < minSoundingStrings {
		return nil
	}

	chord, err := theory.ParseChord(chordName)
	if err != nil {
		return nil
	}
	chordTones := chord.PitchClassSet()

	var voicings []ChordVoicing
	frets := make([]int, 0, len(tuning))
	searchStrings(tuning, chordTones, chord, frets, &voicings, maxResults*overgenerationFactor)

	for i := range voicings {
		voicings[i].ErgonomyScore = ErgonomyScore(voicings[i], tuning)
	}
	sort.SliceStable(voicings, func(i, j int) bool {
		return voicings[i].ErgonomyScore > voicings[j].ErgonomyScore
	})

	if len(voicings) > maxResults {
		voicings = voicings[:maxResults]
	}
	return voicings
}

// searchStrings runs the depth-first enumeration, one string per level.
// Recursion depth is bounded by the string count.
func searchStrings(tuning []string, chordTones map[string]bool, chord theory.Chord, frets []int, results *[]ChordVoicing, limit int) {
	if len(*results) >= limit {
		return
	}

	if len(frets) == len(tuning) {
		if v, ok := buildVoicing(tuning, frets, chordTones, chord); ok {
			*results = append(*results, v)
		}
		return
	}

	stringIdx := len(frets)
	open := tuning[stringIdx]
	openPC := theory.PitchClass(open)

	var options []int
	if chordTones[openPC] {
		options = append(options, 0)
	}
	options = append(options, MutedFret)

	minPressed, maxPressed := pressedRange(frets)
	for fret := 1; fret <= maxFret; fret++ {
		pc := theory.PitchClass(theory.NoteAtFret(open, fret))
		if pc == "" || !chordTones[pc] {
			continue
		}
		if minPressed > 0 && (fret < minPressed-generationStretch || fret > maxPressed+generationStretch) {
			continue
		}
		options = append(options, fret)
	}

	// Preference order: open first, then ascending fret, muted last.
	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a == 0 {
			return true
		}
		if b == 0 {
			return false
		}
		if a == MutedFret {
			return false
		}
		if b == MutedFret {
			return true
		}
		return a < b
	})
	if len(options) > maxOptionsPerString {
		options = options[:maxOptionsPerString]
	}

	for _, fret := range options {
		searchStrings(tuning, chordTones, chord, append(frets, fret), results, limit)
		if len(*results) >= limit {
			return
		}
	}
}

func pressedRange(frets []int) (min, max int) {
	for _, f := range frets {
		if f <= 0 {
			continue
		}
		if min == 0 || f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return min, max
}

// buildVoicing validates a complete fret assignment and materializes it.
// Invalid assignments (fewer than three sounding strings, or any sounding
// pitch outside the chord) are discarded.
func buildVoicing(tuning []string, frets []int, chordTones map[string]bool, chord theory.Chord) (ChordVoicing, bool) {
	var notes []string
	var drones []int
	for i, f := range frets {
		if f < 0 {
			continue
		}
		note := theory.NoteAtFret(tuning[i], f)
		if !chordTones[theory.PitchClass(note)] {
			return ChordVoicing{}, false
		}
		notes = append(notes, note)
		if f == 0 {
			drones = append(drones, i)
		}
	}
	if len(notes) < minSoundingStrings {
		return ChordVoicing{}, false
	}

	return ChordVoicing{
		Chord:        chord.Name,
		Frets:        append([]int(nil), frets...),
		Fingers:      assignFingers(frets),
		DroneStrings: drones,
		BassNote:     notes[len(notes)-1],
		Notes:        notes,
	}, true
}

// assignFingers gives each distinct pressed fret the next free finger,
// low frets first, capped at four (a barre reuses one finger).
func assignFingers(frets []int) []int {
	pressed := make([]int, 0, len(frets))
	for _, f := range frets {
		if f > 0 {
			pressed = append(pressed, f)
		}
	}
	sort.Ints(pressed)

	fretToFinger := make(map[int]int)
	next := 1
	for _, f := range pressed {
		if _, ok := fretToFinger[f]; !ok {
			finger := next
			if finger > 4 {
				finger = 4
			}
			fretToFinger[f] = finger
			next++
		}
	}

	fingers := make([]int, len(frets))
	for i, f := range frets {
		if f > 0 {
			fingers[i] = fretToFinger[f]
		}
	}
	return fingers
}

// countGaps counts muted strings strictly between the lowest- and
// highest-index sounding strings.
func countGaps(frets []int) int {
	first, last := -1, -1
	for i, f := range frets {
		if f >= 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || last-first < 1 {
		return 0
	}

	gaps := 0
	for i := first + 1; i < last; i++ {
		if frets[i] < 0 {
			gaps++
		}
	}
	return gaps
}

// hasBarre reports whether two adjacent strings are pressed at the same
// fret.
func hasBarre(frets []int) bool {
	for i := 0; i+1 < len(frets); i++ {
		if frets[i] > 0 && frets[i] == frets[i+1] {
			return true
		}
	}
	return false
}
