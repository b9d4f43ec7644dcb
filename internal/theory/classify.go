package theory

// intervalSet is a presence set of simplified interval tokens.
type intervalSet map[string]bool

func newIntervalSet(tokens []string) intervalSet {
	set := make(intervalSet, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func (s intervalSet) has(tokens ...string) bool {
	for _, t := range tokens {
		if s[t] {
			return true
		}
	}
	return false
}

// ClassifyIntervals maps a set of intervals-from-root onto a chord-type
// suffix ("" = plain major). The rules form an ordered decision list:
// extended types are checked before their subset triads so that, e.g.,
// {1P,3M,7M,2M} names maj9 rather than stopping at maj7, and sus types
// are only reachable once every third-bearing rule has failed. The bool
// result is false when no rule matches, which sends the caller to the
// chord-database fallback.
func ClassifyIntervals(tokens []string) (string, bool) {
	set := newIntervalSet(tokens)

	has1 := set.has("1P", "8P")
	has2M := set.has("2M")
	has3m := set.has("3m")
	has3M := set.has("3M")
	has4P := set.has("4P")
	has5P := set.has("5P")
	has5d := set.has("5d", "d5")
	has6m := set.has("6m")
	has7m := set.has("7m")
	has7M := set.has("7M")

	switch {
	// Extended major chords first.
	case has1 && has3M && has7M && has2M:
		return "maj9", true
	case has1 && has3M && has7M:
		return "maj7", true
	case has1 && has3M && has7m && has2M:
		return "9", true
	case has1 && has3M && has2M && !has7m && !has7M:
		return "add9", true
	case has1 && has3M && has7m:
		return "7", true
	// Plain major requires the fifth to avoid claiming inversions of
	// other chords.
	case has1 && has3M && has5P && !has3m && !has7m && !has7M:
		return "", true

	// Extended minor chords.
	case has1 && has3m && has7m && has6m:
		return "m7(b13)", true
	case has1 && has3m && has7m && has2M:
		return "m9", true
	case has1 && has3m && has7m:
		return "m7", true
	case has1 && has3m && has2M && !has7m && !has7M:
		return "madd9", true
	case has1 && has3m && has5P && !has3M && !has7m && !has7M:
		return "m", true

	// Sus chords: only reachable with no third present.
	case has1 && has4P && has7m && !has3m && !has3M:
		return "7sus4", true
	case has1 && has4P && has5P && !has3m && !has3M && !has7m && !has7M:
		return "sus4", true
	case has1 && has2M && has5P && !has3m && !has3M:
		return "sus2", true

	case has1 && has3m && has5d:
		return "dim", true
	case has1 && has5P && !has3m && !has3M && !has4P && !has2M:
		return "5", true
	}

	return "", false
}
