package theory

// Inversion labels. Anything other than a third, fifth or seventh in the
// bass yields a label carrying the raw interval token; that flags an
// unusual voicing, not an error.
const (
	InversionRoot   = "Fundamental"
	InversionFirst  = "1st Inversion"
	InversionSecond = "2nd Inversion"
	InversionThird  = "3rd Inversion"
)

// DetectInversion determines which scale degree sits in the bass. The
// bass is the lowest MIDI value among notes, so octave information is
// required; callers without octaves must skip inversion detection rather
// than guess.
func DetectInversion(notes []string, root string) string {
	if len(notes) == 0 || root == "" {
		return ""
	}

	bass := SortByPitch(notes)[0]
	bassPC := PitchClass(bass)
	rootPC := PitchClass(root)

	if bassPC == rootPC {
		return InversionRoot
	}

	switch interval := IntervalBetween(rootPC, bassPC); interval {
	case "3M", "3m":
		return InversionFirst
	case "5P", "5d":
		return InversionSecond
	case "7M", "7m":
		return InversionThird
	default:
		return "Inversion (" + interval + ")"
	}
}
