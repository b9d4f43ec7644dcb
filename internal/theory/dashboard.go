package theory

import (
	"fmt"
	"regexp"
	"strings"
)

// AdjacentInterval describes the interval between two neighboring strings
// of a tuning.
type AdjacentInterval struct {
	FromString   int    `json:"from_string"`
	ToString     int    `json:"to_string"`
	FromNote     string `json:"from_note"`
	ToNote       string `json:"to_note"`
	Interval     string `json:"interval"`
	IntervalName string `json:"interval_name"`
	Quality      string `json:"quality"` // stable, tense, open, bright, dark
	Semitones    int    `json:"semitones"`
}

// TuningMood is the dashboard's character summary of a tuning.
type TuningMood struct {
	Primary     string   `json:"primary"`
	Secondary   []string `json:"secondary"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

// TuningDashboard is the full dashboard analysis of a tuning.
type TuningDashboard struct {
	OpenChordName     string             `json:"open_chord_name,omitempty"`
	IsOpenTuning      bool               `json:"is_open_tuning"`
	AdjacentIntervals []AdjacentInterval `json:"adjacent_intervals"`
	Mood              TuningMood         `json:"mood"`
	Characteristics   []string           `json:"characteristics"`
	TotalRange        string             `json:"total_range"`
}

var intervalQualities = map[string]string{
	"1P": "stable", "2m": "tense", "2M": "bright", "3m": "dark",
	"3M": "bright", "4P": "stable", "4A": "tense", "5d": "tense",
	"5P": "stable", "5A": "tense", "6m": "dark", "6M": "bright",
	"7m": "dark", "7M": "bright", "8P": "open",
}

type moodPattern struct {
	Name        string
	Secondary   []string
	Description string
	Color       string
	Matches     func(intervals []string, chord string) bool
}

func countInterval(intervals []string, token string) int {
	n := 0
	for _, iv := range intervals {
		if iv == token {
			n++
		}
	}
	return n
}

// moodPatterns is checked in order; the first match wins and the final
// entry always matches.
var moodPatterns = []moodPattern{
	{
		Name:        "Cinematic",
		Secondary:   []string{"Epic", "Atmospheric"},
		Description: "Wide, resonant voicing suited to orchestral textures and soundscapes.",
		Color:       "indigo",
		Matches: func(intervals []string, chord string) bool {
			hasMaj9 := strings.Contains(chord, "maj9") || strings.Contains(chord, "add9")
			return hasMaj9 || countInterval(intervals, "5P") >= 2
		},
	},
	{
		Name:        "Jazzy",
		Secondary:   []string{"Sophisticated", "Neo-Soul"},
		Description: "Complex intervals suggesting extended harmony and chromatic movement.",
		Color:       "amber",
		Matches: func(intervals []string, chord string) bool {
			if strings.Contains(chord, "7") {
				return true
			}
			thirds := 0
			for _, iv := range intervals {
				if strings.HasSuffix(iv, "m") || strings.HasSuffix(iv, "M") {
					thirds++
				}
			}
			return thirds >= 2
		},
	},
	{
		Name:        "Folk / Acoustic",
		Secondary:   []string{"Intimate", "Organic"},
		Description: "Warm fourths and fifths leaving room for open melodies.",
		Color:       "emerald",
		Matches: func(intervals []string, chord string) bool {
			return strings.Contains(chord, "sus") || countInterval(intervals, "4P") >= 3
		},
	},
	{
		Name:        "Midwest Emo",
		Secondary:   []string{"Nostalgic", "Twinkly"},
		Description: "Ninths and suspended tensions that lean melancholic.",
		Color:       "rose",
		Matches: func(intervals []string, chord string) bool {
			has9 := strings.Contains(chord, "9")
			hasSus := strings.Contains(chord, "sus")
			return has9 || (hasSus && countInterval(intervals, "2M") > 0)
		},
	},
	{
		Name:        "Dark / Tense",
		Secondary:   []string{"Somber", "Dissonant"},
		Description: "Minor and dissonant intervals building an uneasy atmosphere.",
		Color:       "slate",
		Matches: func(intervals []string, _ string) bool {
			tense := countInterval(intervals, "2m") + countInterval(intervals, "7m") +
				countInterval(intervals, "4A") + countInterval(intervals, "5d")
			return tense >= 2
		},
	},
	{
		Name:        "Open / Drone",
		Secondary:   []string{"Meditative", "Ambient"},
		Description: "Unisons, octaves and fifths suited to drones and minimal textures.",
		Color:       "cyan",
		Matches: func(intervals []string, _ string) bool {
			open := countInterval(intervals, "1P") + countInterval(intervals, "8P") +
				countInterval(intervals, "5P")
			return open >= 3
		},
	},
	{
		Name:        "Experimental",
		Secondary:   []string{"Avant-garde", "Math Rock"},
		Description: "An unusual interval combination outside common harmonic conventions.",
		Color:       "purple",
		Matches:     func([]string, string) bool { return true },
	},
}

// simpleOpenChord matches chord names that read as "open tuning" chords:
// bare major/minor triads, sus chords, power chords.
var simpleOpenChord = regexp.MustCompile(`^[A-G][#b]?(m|sus[24]|5)?$`)

// CalculateAdjacentIntervals computes the interval between each pair of
// neighboring strings, measured upward from the lower-pitched string.
func CalculateAdjacentIntervals(tuning []string) []AdjacentInterval {
	intervals := make([]AdjacentInterval, 0, len(tuning))
	for i := 0; i+1 < len(tuning); i++ {
		from, to := tuning[i], tuning[i+1]
		token := IntervalBetween(to, from)
		intervals = append(intervals, AdjacentInterval{
			FromString:   i,
			ToString:     i + 1,
			FromNote:     from,
			ToNote:       to,
			Interval:     token,
			IntervalName: IntervalName(token),
			Quality:      intervalQuality(token),
			Semitones:    SemitoneDistance(from, to) % 12,
		})
	}
	return intervals
}

func intervalQuality(token string) string {
	if q, ok := intervalQualities[token]; ok {
		return q
	}
	return "stable"
}

// DetectOpenChord names the chord an open tuning rings as, or "" when the
// tuning is not a clean open chord (too many distinct pitch classes, or
// only exotic matches).
func DetectOpenChord(tuning []string) string {
	if len(tuning) < 3 {
		return ""
	}

	classes := uniquePitchClasses(tuning)
	if len(classes) > 4 {
		return ""
	}

	for _, name := range Detect(SortByPitch(tuning)) {
		c, err := ParseChord(name)
		if err != nil {
			continue
		}
		switch c.Suffix {
		case "", "m", "sus2", "sus4", "7", "maj7", "m7", "add9", "madd9", "6", "m6", "dim", "aug":
			return "Open " + name
		}
	}
	return ""
}

// IsOpenTuning reports whether the tuning's open strings form a
// recognizable chord.
func IsOpenTuning(tuning []string) bool {
	classes := uniquePitchClasses(tuning)
	if len(classes) > 5 {
		return false
	}
	return len(Detect(SortByPitch(tuning))) > 0
}

func uniquePitchClasses(notes []string) []string {
	seen := make(map[string]bool, len(notes))
	classes := make([]string, 0, len(notes))
	for _, n := range notes {
		pc := PitchClass(n)
		if pc == "" || seen[pc] {
			continue
		}
		seen[pc] = true
		classes = append(classes, pc)
	}
	return classes
}

// TuningRange formats the pitch span of a tuning, e.g.
// "E2 - E4 (2 octaves)".
func TuningRange(tuning []string) string {
	if len(tuning) == 0 {
		return ""
	}

	sorted := SortByPitch(tuning)
	lowest, highest := sorted[0], sorted[len(sorted)-1]
	low, _ := MIDIValue(lowest)
	high, _ := MIDIValue(highest)

	semitones := high - low
	octaves := semitones / 12
	remaining := semitones % 12

	rangeStr := lowest + " - " + highest
	if octaves > 0 {
		rangeStr += fmt.Sprintf(" (%d octave", octaves)
		if octaves > 1 {
			rangeStr += "s"
		}
		if remaining > 0 {
			rangeStr += fmt.Sprintf(" + %d st", remaining)
		}
		rangeStr += ")"
	}
	return rangeStr
}

// AnalyzeTuningDashboard assembles the full dashboard view of a tuning.
// externalChordName, when non-empty, is the name resolved by harmonic
// analysis and takes precedence over internal open-chord detection.
func AnalyzeTuningDashboard(tuning []string, externalChordName string) TuningDashboard {
	adjacent := CalculateAdjacentIntervals(tuning)

	openChord := ""
	isOpen := false
	if externalChordName != "" {
		isOpen = simpleOpenChord.MatchString(externalChordName)
		if isOpen {
			openChord = "Open " + externalChordName
		} else {
			openChord = externalChordName
		}
	} else {
		openChord = DetectOpenChord(tuning)
		isOpen = IsOpenTuning(tuning)
	}

	intervals := make([]string, len(adjacent))
	for i, a := range adjacent {
		intervals[i] = a.Interval
	}

	return TuningDashboard{
		OpenChordName:     openChord,
		IsOpenTuning:      isOpen,
		AdjacentIntervals: adjacent,
		Mood:              tuningMood(intervals, openChord),
		Characteristics:   tuningCharacteristics(adjacent),
		TotalRange:        TuningRange(tuning),
	}
}

func tuningMood(intervals []string, openChord string) TuningMood {
	for _, p := range moodPatterns {
		if p.Matches(intervals, openChord) {
			return TuningMood{
				Primary:     p.Name,
				Secondary:   p.Secondary,
				Description: p.Description,
				Color:       p.Color,
			}
		}
	}
	last := moodPatterns[len(moodPatterns)-1]
	return TuningMood{Primary: last.Name, Secondary: last.Secondary, Description: last.Description, Color: last.Color}
}

func tuningCharacteristics(adjacent []AdjacentInterval) []string {
	var characteristics []string

	counts := map[string]int{}
	var intervals []string
	for _, a := range adjacent {
		counts[a.Quality]++
		intervals = append(intervals, a.Interval)
	}

	if counts["stable"]*2 >= len(adjacent) && len(adjacent) > 0 {
		characteristics = append(characteristics, "Stable")
	}
	if counts["tense"] >= 2 {
		characteristics = append(characteristics, "Tense")
	}
	if counts["bright"] >= 2 {
		characteristics = append(characteristics, "Bright")
	}
	if counts["dark"] >= 2 {
		characteristics = append(characteristics, "Dark")
	}

	if countInterval(intervals, "5P") > 0 {
		characteristics = append(characteristics, "Wide")
	}
	if countInterval(intervals, "4P") >= 3 {
		characteristics = append(characteristics, "Quartal")
	}
	if countInterval(intervals, "2M") > 0 || countInterval(intervals, "2m") > 0 {
		characteristics = append(characteristics, "Melodic")
	}
	if countInterval(intervals, "8P") > 0 {
		characteristics = append(characteristics, "Resonant")
	}

	if len(characteristics) == 0 {
		return []string{"Balanced"}
	}
	return characteristics
}
