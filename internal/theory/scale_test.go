package theory

import (
	"reflect"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input       string
		tonic       string
		mode        string
		expectError bool
	}{
		{input: "C major", tonic: "C", mode: "major"},
		{input: "A minor", tonic: "A", mode: "minor"},
		{input: "F#", tonic: "F#", mode: "major"},
		{input: "Bb Minor", tonic: "A#", mode: "minor"},
		{input: "", expectError: true},
		{input: "X major", expectError: true},
	}

	for _, tt := range tests {
		tonic, mode, err := ParseKey(tt.input)
		if tt.expectError {
			if err == nil {
				t.Errorf("ParseKey(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", tt.input, err)
			continue
		}
		if tonic != tt.tonic || mode != tt.mode {
			t.Errorf("ParseKey(%q): expected (%q, %q), got (%q, %q)", tt.input, tt.tonic, tt.mode, tonic, mode)
		}
	}
}

func TestScaleNotes(t *testing.T) {
	tests := []struct {
		tonic    string
		mode     string
		expected []string
	}{
		{"C", "major", []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"A", "minor", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"E", "minor", []string{"E", "F#", "G", "A", "B", "C", "D"}},
		{"G", "major", []string{"G", "A", "B", "C", "D", "E", "F#"}},
	}

	for _, tt := range tests {
		if got := ScaleNotes(tt.tonic, tt.mode); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ScaleNotes(%q, %q): expected %v, got %v", tt.tonic, tt.mode, tt.expected, got)
		}
	}

	if notes := ScaleNotes("bad", "major"); notes != nil {
		t.Errorf("expected nil for invalid tonic, got %v", notes)
	}
}

func TestScaleChords(t *testing.T) {
	tests := []struct {
		key      string
		expected []string
	}{
		{"C major", []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}},
		{"A minor", []string{"Am", "Bdim", "C", "Dm", "Em", "F", "G"}},
		{"G major", []string{"G", "Am", "Bm", "C", "D", "Em", "F#dim"}},
	}

	for _, tt := range tests {
		if got := ScaleChords(tt.key); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ScaleChords(%q): expected %v, got %v", tt.key, tt.expected, got)
		}
	}

	if chords := ScaleChords("no such key at all"); chords != nil {
		t.Errorf("expected nil for invalid key, got %v", chords)
	}
}

func TestScaleChordsAllParse(t *testing.T) {
	for _, key := range []string{"C major", "F# major", "Bb minor", "E minor"} {
		for _, chord := range ScaleChords(key) {
			if _, err := ParseChord(chord); err != nil {
				t.Errorf("diatonic chord %q of %q does not parse: %v", chord, key, err)
			}
		}
	}
}
