package theory

import (
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectPC   string
		expectOct  int
		hasOctave  bool
		expectFail bool
	}{
		{name: "plain pitch class", input: "C", expectPC: "C"},
		{name: "sharp with octave", input: "F#3", expectPC: "F#", expectOct: 3, hasOctave: true},
		{name: "flat normalizes to sharp", input: "Gb", expectPC: "F#"},
		{name: "lowercase letter", input: "e2", expectPC: "E", expectOct: 2, hasOctave: true},
		{name: "double flat", input: "Dbb4", expectPC: "C", expectOct: 4, hasOctave: true},
		{name: "negative octave", input: "C-1", expectPC: "C", expectOct: -1, hasOctave: true},
		{name: "wrap below C", input: "Cb", expectPC: "B"},
		{name: "empty", input: "", expectFail: true},
		{name: "bad letter", input: "H4", expectFail: true},
		{name: "garbage octave", input: "C4x", expectFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNote(tt.input)
			if tt.expectFail {
				if err == nil {
					t.Fatalf("ParseNote(%q) expected error, got %+v", tt.input, n)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNote(%q) failed: %v", tt.input, err)
			}
			if n.PC != tt.expectPC {
				t.Errorf("PC: expected %q, got %q", tt.expectPC, n.PC)
			}
			if n.HasOctave != tt.hasOctave {
				t.Errorf("HasOctave: expected %v, got %v", tt.hasOctave, n.HasOctave)
			}
			if tt.hasOctave && n.Octave != tt.expectOct {
				t.Errorf("Octave: expected %d, got %d", tt.expectOct, n.Octave)
			}
		})
	}
}

func TestNoteMIDI(t *testing.T) {
	tests := []struct {
		note string
		midi int
	}{
		{"C4", 60},
		{"A4", 69},
		{"E2", 40},
		{"C-1", 0},
		{"G3", 55},
	}

	for _, tt := range tests {
		midi, ok := MIDIValue(tt.note)
		if !ok {
			t.Fatalf("MIDIValue(%q) not ok", tt.note)
		}
		if midi != tt.midi {
			t.Errorf("MIDIValue(%q): expected %d, got %d", tt.note, tt.midi, midi)
		}
	}

	if _, ok := MIDIValue("C"); ok {
		t.Error("bare pitch class should not have a MIDI value")
	}
}

func TestNoteFromMIDIRoundTrip(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		n := NoteFromMIDI(midi)
		back, ok := n.MIDI()
		if !ok || back != midi {
			t.Fatalf("round trip failed for %d: got %d (ok=%v)", midi, back, ok)
		}
	}
}

func TestNoteFreq(t *testing.T) {
	a4, err := ParseNote("A4")
	if err != nil {
		t.Fatal(err)
	}
	if freq := a4.Freq(); math.Abs(freq-440) > 0.001 {
		t.Errorf("A4 frequency: expected 440, got %f", freq)
	}

	bare := Note{PC: "A"}
	if bare.Freq() != 0 {
		t.Error("note without octave should have frequency 0")
	}
}

func TestNoteAtFret(t *testing.T) {
	tests := []struct {
		open     string
		fret     int
		expected string
	}{
		{"E2", 0, "E2"},
		{"E2", 3, "G2"},
		{"G3", 5, "C4"},
		{"B3", 1, "C4"},
		{"E2", -1, ""},
		{"notanote", 2, ""},
	}

	for _, tt := range tests {
		if got := NoteAtFret(tt.open, tt.fret); got != tt.expected {
			t.Errorf("NoteAtFret(%q, %d): expected %q, got %q", tt.open, tt.fret, tt.expected, got)
		}
	}
}

func TestPitchClass(t *testing.T) {
	if pc := PitchClass("Db5"); pc != "C#" {
		t.Errorf("expected C#, got %q", pc)
	}
	if pc := PitchClass("xx"); pc != "" {
		t.Errorf("expected empty pitch class for malformed note, got %q", pc)
	}
}

func TestSemitoneDistance(t *testing.T) {
	if d := SemitoneDistance("C4", "E4"); d != 4 {
		t.Errorf("expected 4, got %d", d)
	}
	if d := SemitoneDistance("E4", "C4"); d != 4 {
		t.Errorf("distance should be absolute, got %d", d)
	}
	if d := SemitoneDistance("E2", "E4"); d != 24 {
		t.Errorf("expected 24, got %d", d)
	}
}
