package theory

import "strings"

// StringGroupAnalysis is the result of analyzing a note group against a
// declared root. Intervals[i] is always the simplified ascending interval
// from Root to Notes[i]; in a well-formed single-root analysis exactly one
// entry is "1P" and marks the root-bearing note.
type StringGroupAnalysis struct {
	StringIndices []int    `json:"string_indices"`
	Notes         []string `json:"notes"`
	Intervals     []string `json:"intervals"`
	ChordName     string   `json:"chord_name"`
	EmotionalTag  string   `json:"emotional_tag"`
	Inversion     string   `json:"inversion"`
	Root          string   `json:"root"`
}

// UnresolvedMarker flags a marked-set analysis whose candidate root could
// not be matched to any chord name.
const UnresolvedMarker = "?"

// emotionalTag picks a descriptive tag for a chord by substring matching
// on the resolved name and intervals. The rules are mutually exclusive and
// ordered; the first match wins, with "Experimental" as the default. The
// vocabulary is presentation flavor, the selection mechanism is not.
func emotionalTag(chordName string, intervals []string) string {
	name := chordName
	isInversion := strings.Contains(name, "/")
	contains := func(sub string) bool { return strings.Contains(name, sub) }
	hasInterval := func(tok string) bool {
		for _, iv := range intervals {
			if iv == tok {
				return true
			}
		}
		return false
	}

	switch {
	case contains("7sus4"):
		return "Dominant Tension / Bluesy / Funk"
	case contains("sus4"):
		return "Open / Folk / Spiritual"
	case contains("sus2"):
		return "Dreamlike / Nostalgic / Modern"
	case contains("maj9"), contains("add9"):
		return "Nostalgic / Midwest Emo"
	case contains("m9"), contains("m11"):
		return "Deep / Neo-Soul"
	case contains("sus"):
		return "Ethereal / Soundscape"
	case contains("dim"), contains("b5"):
		return "Tense / Dark"
	case isInversion && hasInterval("3m"):
		return "Dramatic / Romantic (Minor Inv)"
	case isInversion && hasInterval("3M"):
		return "Warm / Pastoral (Major Inv)"
	case contains("maj7"):
		return "Dreamy / Jazz"
	case contains("m7"):
		return "Elegant / Lo-Fi"
	}

	return "Experimental"
}

// AnalyzeTuningGroups analyzes every contiguous string group of a tuning,
// from the top three strings up to the full set. Strings are ordered
// treble to bass, so the last string of each group is the lowest pitch and
// is treated as the declared root. One analysis per group size.
func AnalyzeTuningGroups(tuning []string) []StringGroupAnalysis {
	results := make([]StringGroupAnalysis, 0, len(tuning))
	for size := 3; size <= len(tuning); size++ {
		indices := make([]int, size)
		for i := range indices {
			indices[i] = i
		}
		results = append(results, analyzeGroup(tuning[:size], indices))
	}
	return results
}

func analyzeGroup(notes []string, indices []int) StringGroupAnalysis {
	root := notes[len(notes)-1]
	rootPC := PitchClass(root)

	intervals := make([]string, len(notes))
	for i, n := range notes {
		intervals[i] = IntervalBetween(root, n)
	}

	chordName := ""
	if suffix, ok := ClassifyIntervals(intervals); ok {
		chordName = rootPC + suffix
	} else {
		// Fall back to the chord database over the pitch-sorted group.
		if detected := Detect(SortByPitch(notes)); len(detected) > 0 {
			chordName = detected[0]
		} else {
			chordName = rootPC
		}
	}

	return StringGroupAnalysis{
		StringIndices: indices,
		Notes:         append([]string(nil), notes...),
		Intervals:     intervals,
		ChordName:     chordName,
		EmotionalTag:  emotionalTag(chordName, intervals),
		Inversion:     DetectInversion(notes, rootPC),
		Root:          rootPC,
	}
}

// AnalyzeMarkedPitchSet analyzes an arbitrary set of marked notes, taking
// every member in turn as a candidate root: one analysis per input note.
// When the classifier fails, the chord-database fallback must agree on the
// candidate root; a detection with a different tonic is reported as
// root+"?" rather than silently renamed. Fewer than two notes yields nil.
func AnalyzeMarkedPitchSet(notes []string) []StringGroupAnalysis {
	if len(notes) < 2 {
		return nil
	}

	hasOctaves := true
	for _, n := range notes {
		if parsed, err := ParseNote(n); err != nil || !parsed.HasOctave {
			hasOctaves = false
			break
		}
	}

	results := make([]StringGroupAnalysis, 0, len(notes))
	for _, rootNote := range notes {
		rootPC := PitchClass(rootNote)

		intervals := make([]string, len(notes))
		for i, n := range notes {
			intervals[i] = IntervalBetween(rootPC, PitchClass(n))
		}

		chordName := ""
		if suffix, ok := ClassifyIntervals(intervals); ok {
			chordName = rootPC + suffix
		} else {
			chordName = rootPC + UnresolvedMarker
			for _, detected := range Detect(notes) {
				if c, err := ParseChord(detected); err == nil && c.Root == rootPC {
					chordName = detected
					break
				}
			}
		}

		inversion := ""
		if hasOctaves {
			inversion = DetectInversion(notes, rootPC)
		}

		indices := make([]int, len(notes))
		for i := range indices {
			indices[i] = i
		}

		results = append(results, StringGroupAnalysis{
			StringIndices: indices,
			Notes:         append([]string(nil), notes...),
			Intervals:     intervals,
			ChordName:     chordName,
			EmotionalTag:  emotionalTag(chordName, intervals),
			Inversion:     inversion,
			Root:          rootPC,
		})
	}
	return results
}

// Reanalyze recomputes an analysis against a different root, keeping the
// same note multiset and string indices. When neither the classifier nor
// the chord database can name the set from the new root, the result is a
// slash chord over the best previous guess.
func Reanalyze(original StringGroupAnalysis, newRoot string) StringGroupAnalysis {
	rootPC := PitchClass(newRoot)

	intervals := make([]string, len(original.Notes))
	for i, n := range original.Notes {
		intervals[i] = IntervalBetween(rootPC, PitchClass(n))
	}

	chordName := ""
	if suffix, ok := ClassifyIntervals(intervals); ok {
		chordName = rootPC + suffix
	} else {
		detected := Detect(original.Notes)
		for _, d := range detected {
			if c, err := ParseChord(d); err == nil && c.Root == rootPC {
				chordName = d
				break
			}
		}
		if chordName == "" {
			base := original.ChordName
			if len(detected) > 0 {
				base = detected[0]
			}
			if i := strings.IndexByte(base, '/'); i >= 0 {
				base = base[:i]
			}
			chordName = base + "/" + rootPC
		}
	}

	result := original
	result.Notes = append([]string(nil), original.Notes...)
	result.Intervals = intervals
	result.ChordName = chordName
	result.EmotionalTag = emotionalTag(chordName, intervals)
	result.Inversion = DetectInversion(original.Notes, rootPC)
	result.Root = rootPC
	return result
}
