package theory

import (
	"reflect"
	"testing"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		name        string
		symbol      string
		expectRoot  string
		expectBass  string
		quality     string
		expectNotes []string
		expectError bool
	}{
		{
			name:        "major triad",
			symbol:      "C",
			expectRoot:  "C",
			quality:     QualityMajor,
			expectNotes: []string{"C", "E", "G"},
		},
		{
			name:        "minor seventh",
			symbol:      "Am7",
			expectRoot:  "A",
			quality:     QualityMinor,
			expectNotes: []string{"A", "C", "E", "G"},
		},
		{
			name:        "sharp root extended",
			symbol:      "F#maj9",
			expectRoot:  "F#",
			quality:     QualityMajor,
			expectNotes: []string{"F#", "A#", "C#", "F", "G#"},
		},
		{
			name:        "flat root normalizes",
			symbol:      "Bbm",
			expectRoot:  "A#",
			quality:     QualityMinor,
			expectNotes: []string{"A#", "C#", "F"},
		},
		{
			name:        "slash chord",
			symbol:      "C/E",
			expectRoot:  "C",
			expectBass:  "E",
			quality:     QualityMajor,
			expectNotes: []string{"C", "E", "G"},
		},
		{
			name:        "dominant seventh",
			symbol:      "G7",
			expectRoot:  "G",
			quality:     QualityDominant,
			expectNotes: []string{"G", "B", "D", "F"},
		},
		{name: "empty", symbol: "", expectError: true},
		{name: "unknown suffix", symbol: "Cxyz", expectError: true},
		{name: "bad root", symbol: "H7", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, err := ParseChord(tt.symbol)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ParseChord(%q) expected error, got %+v", tt.symbol, chord)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q) failed: %v", tt.symbol, err)
			}
			if chord.Root != tt.expectRoot {
				t.Errorf("Root: expected %q, got %q", tt.expectRoot, chord.Root)
			}
			if chord.Bass != tt.expectBass {
				t.Errorf("Bass: expected %q, got %q", tt.expectBass, chord.Bass)
			}
			if chord.Quality != tt.quality {
				t.Errorf("Quality: expected %q, got %q", tt.quality, chord.Quality)
			}
			if !reflect.DeepEqual(chord.Notes, tt.expectNotes) {
				t.Errorf("Notes: expected %v, got %v", tt.expectNotes, chord.Notes)
			}
		})
	}
}

func TestChordPitchClassSet(t *testing.T) {
	chord, err := ParseChord("Em")
	if err != nil {
		t.Fatal(err)
	}
	set := chord.PitchClassSet()
	for _, pc := range []string{"E", "G", "B"} {
		if !set[pc] {
			t.Errorf("expected %q in pitch class set", pc)
		}
	}
	if set["C"] {
		t.Error("C should not be in Em's pitch class set")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		notes    []string
		expected []string
	}{
		{
			name:     "major triad single reading",
			notes:    []string{"C", "E", "G"},
			expected: []string{"C"},
		},
		{
			name:     "seventh chord has two readings",
			notes:    []string{"E2", "G2", "B2", "D3"},
			expected: []string{"Em7", "G6"},
		},
		{
			name:     "duplicates collapse",
			notes:    []string{"C4", "E4", "G4", "C5"},
			expected: []string{"C"},
		},
		{name: "single note", notes: []string{"C"}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.notes)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Detect(%v): expected %v, got %v", tt.notes, tt.expected, got)
			}
		})
	}
}

func TestSortByPitch(t *testing.T) {
	input := []string{"E4", "C4", "G4"}
	sorted := SortByPitch(input)
	expected := []string{"C4", "E4", "G4"}
	if !reflect.DeepEqual(sorted, expected) {
		t.Errorf("expected %v, got %v", expected, sorted)
	}
	// Input untouched.
	if input[0] != "E4" {
		t.Error("SortByPitch must not modify its input")
	}
}
