package theory

import (
	"fmt"
	"sort"
	"strings"
)

// chordType is one entry of the chord database: a name suffix, a broad
// quality, and the interval structure in semitones from the root.
type chordType struct {
	Suffix    string
	Quality   string
	Intervals []int
}

// Chord qualities.
const (
	QualityMajor      = "Major"
	QualityMinor      = "Minor"
	QualityDiminished = "Diminished"
	QualityAugmented  = "Augmented"
	QualitySuspended  = "Suspended"
	QualityDominant   = "Dominant"
	QualityPower      = "Power"
)

// chordTable is the chord database, ordered most-specific (most tones)
// first within each family. Detect walks it in this order, so the ordering
// is the documented tie-break for ambiguous note sets.
var chordTable = []chordType{
	{"maj13", QualityMajor, []int{0, 4, 7, 11, 2, 9}},
	{"13", QualityDominant, []int{0, 4, 7, 10, 2, 9}},
	{"m11", QualityMinor, []int{0, 3, 7, 10, 2, 5}},
	{"11", QualityDominant, []int{0, 4, 7, 10, 2, 5}},
	{"maj9", QualityMajor, []int{0, 4, 7, 11, 2}},
	{"9", QualityDominant, []int{0, 4, 7, 10, 2}},
	{"m9", QualityMinor, []int{0, 3, 7, 10, 2}},
	{"m7(b13)", QualityMinor, []int{0, 3, 7, 10, 8}},
	{"7#9", QualityDominant, []int{0, 4, 7, 10, 3}},
	{"7b9", QualityDominant, []int{0, 4, 7, 10, 1}},
	{"7#11", QualityDominant, []int{0, 4, 7, 10, 6}},
	{"7alt", QualityDominant, []int{0, 4, 10, 1, 6, 8}},
	{"maj7", QualityMajor, []int{0, 4, 7, 11}},
	{"7", QualityDominant, []int{0, 4, 7, 10}},
	{"m7", QualityMinor, []int{0, 3, 7, 10}},
	{"m7b5", QualityDiminished, []int{0, 3, 6, 10}},
	{"dim7", QualityDiminished, []int{0, 3, 6, 9}},
	{"7sus4", QualitySuspended, []int{0, 5, 7, 10}},
	{"aug7", QualityAugmented, []int{0, 4, 8, 10}},
	{"7#5", QualityAugmented, []int{0, 4, 8, 10}},
	{"6", QualityMajor, []int{0, 4, 7, 9}},
	{"m6", QualityMinor, []int{0, 3, 7, 9}},
	{"add9", QualityMajor, []int{0, 4, 7, 2}},
	{"madd9", QualityMinor, []int{0, 3, 7, 2}},
	{"add11", QualityMajor, []int{0, 4, 7, 5}},
	{"", QualityMajor, []int{0, 4, 7}},
	{"m", QualityMinor, []int{0, 3, 7}},
	{"dim", QualityDiminished, []int{0, 3, 6}},
	{"aug", QualityAugmented, []int{0, 4, 8}},
	{"sus2", QualitySuspended, []int{0, 2, 7}},
	{"sus4", QualitySuspended, []int{0, 5, 7}},
	{"5", QualityPower, []int{0, 7}},
}

// chordTypesBySuffix indexes the table for name parsing.
var chordTypesBySuffix = func() map[string]chordType {
	m := make(map[string]chordType, len(chordTable))
	for _, ct := range chordTable {
		m[ct.Suffix] = ct
	}
	return m
}()

// Chord is the structured form of a chord symbol: root pitch class,
// quality, suffix, the interval structure, and the member pitch classes.
// Bass holds the slash-bass pitch class for symbols like "C/E"; it is ""
// for root-position symbols.
type Chord struct {
	Name      string   `json:"name"`
	Root      string   `json:"root"`
	Bass      string   `json:"bass,omitempty"`
	Suffix    string   `json:"suffix"`
	Quality   string   `json:"quality"`
	Intervals []int    `json:"intervals"`
	Notes     []string `json:"notes"`
}

// ParseChord parses a chord symbol ("Am7", "F#maj9", "C/E") against the
// chord database. Unknown suffixes are an error so that callers can fall
// back to a simpler chord rather than voice something unintended.
func ParseChord(symbol string) (Chord, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Chord{}, fmt.Errorf("empty chord symbol")
	}

	name := symbol
	bass := ""
	if i := strings.IndexByte(symbol, '/'); i >= 0 {
		name = strings.TrimSpace(symbol[:i])
		bass = PitchClass(strings.TrimSpace(symbol[i+1:]))
	}

	rootLen := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		rootLen = 2
	}
	root, err := ParseNote(name[:rootLen])
	if err != nil {
		return Chord{}, fmt.Errorf("invalid chord root in %q: %w", symbol, err)
	}

	suffix := name[rootLen:]
	ct, ok := chordTypesBySuffix[suffix]
	if !ok {
		return Chord{}, fmt.Errorf("unknown chord type %q in %q", suffix, symbol)
	}

	notes := make([]string, len(ct.Intervals))
	for i, iv := range ct.Intervals {
		notes[i] = pitchClassNames[(root.Semitone()+iv)%12]
	}

	return Chord{
		Name:      root.PC + suffix,
		Root:      root.PC,
		Bass:      bass,
		Suffix:    suffix,
		Quality:   ct.Quality,
		Intervals: ct.Intervals,
		Notes:     notes,
	}, nil
}

// PitchClassSet returns the chord's member pitch classes as a set.
func (c Chord) PitchClassSet() map[string]bool {
	set := make(map[string]bool, len(c.Notes))
	for _, n := range c.Notes {
		set[n] = true
	}
	return set
}

// Detect names the chords that exactly match a note set. Each candidate
// root is tried in input order; for each, the interval set from the root
// is compared against the chord database in table order. The first match
// per root wins, so the result is deterministic for a given input order.
// Callers wanting the conventional reading pass notes sorted ascending by
// pitch (bass first).
func Detect(notes []string) []string {
	classes := make([]string, 0, len(notes))
	seen := make(map[string]bool, len(notes))
	for _, n := range notes {
		pc := PitchClass(n)
		if pc == "" || seen[pc] {
			continue
		}
		seen[pc] = true
		classes = append(classes, pc)
	}
	if len(classes) < 2 {
		return nil
	}

	var names []string
	for _, root := range classes {
		rootNote, _ := ParseNote(root)
		set := make(map[int]bool, len(classes))
		for _, pc := range classes {
			n, _ := ParseNote(pc)
			set[((n.Semitone()-rootNote.Semitone())%12+12)%12] = true
		}
		for _, ct := range chordTable {
			if intervalSetEqual(set, ct.Intervals) {
				names = append(names, root+ct.Suffix)
				break
			}
		}
	}
	return names
}

func intervalSetEqual(set map[int]bool, intervals []int) bool {
	if len(set) != len(intervals) {
		return false
	}
	for _, iv := range intervals {
		if !set[iv%12] {
			return false
		}
	}
	return true
}

// SortByPitch returns the notes sorted ascending by MIDI value. Notes
// without octave information read as MIDI 0 and keep their input order
// at the front. The input is not modified.
func SortByPitch(notes []string) []string {
	sorted := make([]string, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		mi, _ := MIDIValue(sorted[i])
		mj, _ := MIDIValue(sorted[j])
		return mi < mj
	})
	return sorted
}
