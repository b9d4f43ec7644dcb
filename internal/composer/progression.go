package composer

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fretwise/fretwise-api/internal/theory"
)

// voicingPoolSize is how many raw voicings per chord the generator pulls
// from the search before filtering by the algorithm options.
const voicingPoolSize = 80

// attemptFactor bounds generation work at resultCount*attemptFactor
// pattern attempts.
const attemptFactor = 4

// Progression is an ordered sequence of voicings over one tuning.
type Progression struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Voicings          []ChordVoicing `json:"voicings"`
	Tuning            []string       `json:"tuning"`
	ErgonomyAvg       float64        `json:"ergonomy_avg"`
	VoiceLeadingScore float64        `json:"voice_leading_score"`
	CreatedAt         time.Time      `json:"created_at"`
}

// GenerateOptions configures a progression generation request.
type GenerateOptions struct {
	Tuning         []string         `json:"tuning"`
	ChordCount     int              `json:"chord_count"`
	RequiredChords []string         `json:"required_chords,omitempty"`
	ContinueFrom   *Progression     `json:"continue_from,omitempty"`
	Key            string           `json:"key"`
	ResultCount    int              `json:"result_count"`
	Algorithm      AlgorithmOptions `json:"algorithm"`
}

// Scale-degree patterns per mode. Degrees are 1-based; a random
// rotation at generation time keeps repeated runs from converging on
// the same sequences.
var progressionPatterns = map[string][][]int{
	"major": {
		{1, 4, 5, 1},
		{1, 5, 6, 4},
		{1, 6, 4, 5},
		{2, 5, 1, 6},
		{1, 4, 6, 5},
		{4, 1, 5, 6},
		{1, 3, 4, 5},
		{6, 4, 1, 5},
	},
	"minor": {
		{1, 4, 5, 1},
		{1, 6, 3, 7},
		{1, 7, 6, 5},
		{1, 4, 7, 3},
		{1, 6, 7, 1},
		{4, 6, 1, 7},
		{1, 5, 6, 4},
		{6, 7, 1, 5},
	},
}

// GenerateProgressions produces up to ResultCount progressions ranked
// by the even blend of average ergonomy and voice-leading smoothness.
// The rng drives pattern choice, required-chord placement and chord
// extensions; pass a seeded source for reproducible output.
func GenerateProgressions(opts GenerateOptions, rng *rand.Rand) []Progression {
	if opts.ChordCount < 2 || opts.ResultCount < 1 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	key := opts.Key
	if key == "" {
		key = "C major"
	}
	scaleChords := theory.ScaleChords(key)
	if len(scaleChords) == 0 {
		return nil
	}

	mode := "major"
	if strings.Contains(strings.ToLower(key), "minor") {
		mode = "minor"
	}
	patterns := make([][]int, len(progressionPatterns[mode]))
	copy(patterns, progressionPatterns[mode])
	rng.Shuffle(len(patterns), func(i, j int) {
		patterns[i], patterns[j] = patterns[j], patterns[i]
	})
	randomOffset := rng.Intn(100)

	var results []Progression
	for attempt := 0; attempt < opts.ResultCount*attemptFactor && len(results) < opts.ResultCount; attempt++ {
		pattern := patterns[(attempt+randomOffset)%len(patterns)]
		prog := generateSingle(opts, scaleChords, pattern, attempt+randomOffset, rng)
		if prog == nil || len(prog.Voicings) != opts.ChordCount {
			continue
		}
		if isDuplicate(results, *prog) {
			continue
		}
		results = append(results, *prog)
	}

	sortProgressions(results)
	if len(results) > opts.ResultCount {
		results = results[:opts.ResultCount]
	}
	return results
}

func sortProgressions(progs []Progression) {
	sort.SliceStable(progs, func(i, j int) bool {
		return rankScore(progs[i]) > rankScore(progs[j])
	})
}

func rankScore(p Progression) float64 {
	return p.ErgonomyAvg*0.5 + p.VoiceLeadingScore*0.5
}

func isDuplicate(results []Progression, candidate Progression) bool {
	seq := chordSequence(candidate)
	for _, r := range results {
		if chordSequence(r) == seq {
			return true
		}
	}
	return false
}

func chordSequence(p Progression) string {
	names := make([]string, len(p.Voicings))
	for i, v := range p.Voicings {
		names[i] = v.Chord
	}
	return strings.Join(names, "-")
}

// generateSingle builds one candidate progression from a scale-degree
// pattern. It returns nil when any chord in the sequence has no valid
// voicing under the (relaxed) options; a progression never silently
// drops a chord.
func generateSingle(opts GenerateOptions, scaleChords []string, pattern []int, seed int, rng *rand.Rand) *Progression {
	var previous *ChordVoicing
	if opts.ContinueFrom != nil && len(opts.ContinueFrom.Voicings) > 0 {
		last := opts.ContinueFrom.Voicings[len(opts.ContinueFrom.Voicings)-1]
		previous = &last
	}

	remaining := append([]string(nil), opts.RequiredChords...)
	chords := make([]string, 0, opts.ChordCount)
	for i := 0; i < opts.ChordCount; i++ {
		if len(remaining) > 0 && rng.Float64() < 0.5 {
			idx := rng.Intn(len(remaining))
			chords = append(chords, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			continue
		}
		degree := pattern[i%len(pattern)]
		chords = append(chords, scaleChords[(degree-1+seed)%len(scaleChords)])
	}
	// Force-place any required chord randomness left out.
	for _, req := range remaining {
		chords[rng.Intn(len(chords))] = req
	}

	voicings := make([]ChordVoicing, 0, opts.ChordCount)
	for _, name := range chords {
		name = applyChordExtensions(name, opts.Algorithm, rng)

		voicing := selectBestVoicing(name, opts.Tuning, previous, opts.Algorithm)
		if voicing == nil {
			return nil
		}
		voicing.Chord = name
		voicings = append(voicings, *voicing)
		previous = voicing
	}

	ergTotal := 0.0
	for _, v := range voicings {
		ergTotal += float64(v.ErgonomyScore)
	}
	ergAvg := ergTotal / float64(len(voicings))

	vlScore := 100.0
	if len(voicings) > 1 {
		vlTotal := 0.0
		for i := 1; i < len(voicings); i++ {
			vlTotal += VoiceLeadingScore(voicings[i-1], voicings[i])
		}
		vlScore = vlTotal / float64(len(voicings)-1)
	}

	name := strings.Join(chords, " - ")
	if opts.ContinueFrom != nil {
		name = "Continuation: " + name
	}

	return &Progression{
		ID:                uuid.New().String(),
		Name:              name,
		Voicings:          voicings,
		Tuning:            opts.Tuning,
		ErgonomyAvg:       math.Round(ergAvg),
		VoiceLeadingScore: math.Round(vlScore),
		CreatedAt:         time.Now().UTC(),
	}
}

// applyChordExtensions rewrites a diatonic chord into an extended form
// per the complexity tier and extension probability. Names that fall
// outside the chord grammar fall back to the base chord.
func applyChordExtensions(baseChord string, opts AlgorithmOptions, rng *rand.Rand) string {
	if opts.ChordComplexity == ComplexityTriads && opts.ExtensionProbability == 0 {
		return baseChord
	}
	if rng.Float64()*100 > float64(opts.ExtensionProbability) {
		return baseChord
	}

	chord, err := theory.ParseChord(baseChord)
	if err != nil {
		return baseChord
	}

	available := availableExtensions(chord.Quality, opts)
	if len(available) == 0 {
		return baseChord
	}
	ext := available[rng.Intn(len(available))]

	extended := buildExtendedChordName(chord.Root, chord.Quality, ext)
	if _, err := theory.ParseChord(extended); err != nil {
		return baseChord
	}
	return extended
}

func availableExtensions(quality string, opts AlgorithmOptions) []string {
	base := chordExtensions[opts.ChordComplexity]

	if len(opts.AllowedExtensions) > 0 {
		allowed := make(map[string]bool, len(opts.AllowedExtensions))
		for _, ext := range opts.AllowedExtensions {
			allowed[ext] = true
		}
		var out []string
		for _, ext := range base {
			if allowed[ext] {
				out = append(out, ext)
			}
		}
		return out
	}

	var want map[string]bool
	switch quality {
	case theory.QualityMajor:
		want = map[string]bool{"maj7": true, "add9": true, "9": true, "maj9": true, "6": true, "maj13": true, "11": true, "add11": true}
		if opts.PreferSus {
			want["sus2"] = true
			want["sus4"] = true
		}
	case theory.QualityMinor:
		want = map[string]bool{"m7": true, "m9": true, "m11": true, "m7b5": true, "madd9": true, "7": true}
	case theory.QualityDiminished:
		want = map[string]bool{"dim7": true, "m7b5": true, "dim": true}
	case theory.QualityAugmented:
		want = map[string]bool{"aug7": true, "7#5": true}
	default:
		want = map[string]bool{"7": true, "9": true, "11": true, "13": true, "7#9": true, "7b9": true, "7#11": true, "7alt": true, "sus4": true, "sus2": true}
	}

	var out []string
	for _, ext := range base {
		if want[ext] {
			out = append(out, ext)
		}
	}
	return out
}

func buildExtendedChordName(root, quality, extension string) string {
	switch quality {
	case theory.QualityMajor:
		switch extension {
		case "9", "maj9":
			return root + "maj9"
		case "maj7", "add9", "add11", "6", "sus2", "sus4":
			return root + extension
		}
		return root + extension
	case theory.QualityMinor:
		switch extension {
		case "m7", "7":
			return root + "m7"
		case "m9", "m11", "m7b5", "madd9":
			return root + extension
		}
		return root + "m" + extension
	case theory.QualityDiminished:
		switch extension {
		case "dim7", "m7b5":
			return root + extension
		}
		return root + "dim"
	default:
		return root + extension
	}
}

// filterVoicings applies the algorithm options as post-search filters.
func filterVoicings(voicings []ChordVoicing, opts AlgorithmOptions) []ChordVoicing {
	var out []ChordVoicing
	for _, v := range voicings {
		if countGaps(v.Frets) > opts.MaxGaps {
			continue
		}
		if len(v.DroneStrings) > opts.MaxOpenStrings {
			continue
		}
		if len(v.Notes) < opts.MinNotesPerChord {
			continue
		}

		minPressed, maxPressed := pressedRange(v.Frets)
		if minPressed > 0 {
			if opts.PositionRange == PositionLow && maxPressed > 5 {
				continue
			}
			if opts.PositionRange == PositionHigh && maxPressed <= 5 {
				continue
			}
			if maxPressed-minPressed > opts.MaxStretch {
				continue
			}
		}

		if opts.BassIsRoot {
			chord, err := theory.ParseChord(v.Chord)
			if err != nil || theory.PitchClass(v.BassNote) != chord.Root {
				continue
			}
		}

		if !opts.AllowBarreChords && hasBarre(v.Frets) {
			continue
		}

		out = append(out, v)
	}
	return out
}

// selectBestVoicing picks a voicing for chordName under the options,
// blending ergonomy with voice leading against the previous voicing.
// MaxGaps and MaxOpenStrings are hard limits and survive every
// relaxation step; soft constraints loosen in stages when nothing
// passes the filter. A nil return means the chord has no valid voicing
// under the hard limits.
func selectBestVoicing(chordName string, tuning []string, previous *ChordVoicing, opts AlgorithmOptions) *ChordVoicing {
	all := SearchVoicings(chordName, tuning, voicingPoolSize)
	if len(all) == 0 {
		return nil
	}

	voicings := filterVoicings(all, opts)

	if len(voicings) == 0 {
		relaxed := opts
		relaxed.MaxStretch = opts.MaxStretch + 2
		if relaxed.MaxStretch > 6 {
			relaxed.MaxStretch = 6
		}
		voicings = filterVoicings(all, relaxed)

		if len(voicings) == 0 {
			relaxed.PositionRange = PositionAny
			voicings = filterVoicings(all, relaxed)
		}

		if len(voicings) == 0 {
			minimal := DefaultAlgorithmOptions()
			minimal.MaxGaps = opts.MaxGaps
			minimal.MaxOpenStrings = opts.MaxOpenStrings
			minimal.BassIsRoot = opts.BassIsRoot
			minimal.VoiceLeadingWeight = opts.VoiceLeadingWeight
			voicings = filterVoicings(all, minimal)
		}
	}

	if len(voicings) == 0 {
		return nil
	}

	if previous == nil {
		best := voicings[0]
		return &best
	}

	vlWeight := float64(opts.VoiceLeadingWeight) / 100
	ergWeight := 1 - vlWeight

	best := voicings[0]
	bestScore := math.Inf(-1)
	for _, v := range voicings {
		score := float64(v.ErgonomyScore)*ergWeight + VoiceLeadingScore(*previous, v)*vlWeight
		if score > bestScore {
			bestScore = score
			best = v
		}
	}
	return &best
}
