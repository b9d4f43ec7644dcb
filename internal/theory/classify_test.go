package theory

import "testing"

func TestClassifyIntervals(t *testing.T) {
	tests := []struct {
		name      string
		intervals []string
		suffix    string
		matched   bool
	}{
		{name: "major triad", intervals: []string{"1P", "3M", "5P"}, suffix: "", matched: true},
		{name: "minor triad", intervals: []string{"1P", "3m", "5P"}, suffix: "m", matched: true},
		{name: "major seventh beats major triad", intervals: []string{"1P", "3M", "5P", "7M"}, suffix: "maj7", matched: true},
		{name: "major ninth beats major seventh", intervals: []string{"1P", "3M", "7M", "2M"}, suffix: "maj9", matched: true},
		{name: "dominant seventh", intervals: []string{"1P", "3M", "5P", "7m"}, suffix: "7", matched: true},
		{name: "dominant ninth", intervals: []string{"1P", "3M", "7m", "2M"}, suffix: "9", matched: true},
		{name: "add9 without any seventh", intervals: []string{"1P", "3M", "5P", "2M"}, suffix: "add9", matched: true},
		{name: "minor seventh", intervals: []string{"1P", "3m", "5P", "7m"}, suffix: "m7", matched: true},
		{name: "minor seventh from a full string group", intervals: []string{"1P", "5P", "3m", "7m", "4P"}, suffix: "m7", matched: true},
		{name: "minor ninth", intervals: []string{"1P", "3m", "7m", "2M"}, suffix: "m9", matched: true},
		{name: "minor seven flat thirteen", intervals: []string{"1P", "3m", "7m", "6m"}, suffix: "m7(b13)", matched: true},
		{name: "madd9", intervals: []string{"1P", "3m", "2M"}, suffix: "madd9", matched: true},
		{name: "7sus4", intervals: []string{"1P", "4P", "7m"}, suffix: "7sus4", matched: true},
		{name: "sus4 needs no third", intervals: []string{"1P", "4P", "5P"}, suffix: "sus4", matched: true},
		{name: "sus2", intervals: []string{"1P", "2M", "5P"}, suffix: "sus2", matched: true},
		{name: "third suppresses sus4", intervals: []string{"1P", "3M", "4P", "5P"}, suffix: "", matched: true},
		{name: "diminished", intervals: []string{"1P", "3m", "5d"}, suffix: "dim", matched: true},
		{name: "power chord", intervals: []string{"1P", "5P"}, suffix: "5", matched: true},
		{name: "octave counts as root", intervals: []string{"8P", "3M", "5P"}, suffix: "", matched: true},
		{name: "no rule matches", intervals: []string{"1P", "2m", "5d"}, suffix: "", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suffix, ok := ClassifyIntervals(tt.intervals)
			if ok != tt.matched {
				t.Fatalf("matched: expected %v, got %v (suffix %q)", tt.matched, ok, suffix)
			}
			if ok && suffix != tt.suffix {
				t.Errorf("suffix: expected %q, got %q", tt.suffix, suffix)
			}
		})
	}
}

func TestClassifyIntervalsDeterministic(t *testing.T) {
	intervals := []string{"1P", "5P", "3m", "7m", "4P"}
	first, ok1 := ClassifyIntervals(intervals)
	for i := 0; i < 50; i++ {
		got, ok := ClassifyIntervals(intervals)
		if got != first || ok != ok1 {
			t.Fatalf("classification changed between calls: %q vs %q", first, got)
		}
	}
}
