// Package theory implements the harmonic analysis engine: pitch and
// interval arithmetic, the chord-name grammar, interval-pattern chord
// classification, inversion detection, and tuning analysis.
//
// Everything here is pure computation over plain values. Malformed note or
// chord input degrades to best-effort results instead of errors wherever a
// caller could reasonably continue (see Analyze* functions); only the
// low-level parsers report errors.
package theory

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// pitchClassNames is the canonical (sharp) spelling for each semitone.
// Enharmonic input (Gb, Db, ...) normalizes onto these for display.
var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// letterOffsets maps note letters to semitone offsets from C.
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Note is a pitch class with an optional octave. A Note without an octave
// is a bare pitch class ("F#"); with one it is a concrete pitch ("F#3").
type Note struct {
	PC        string `json:"pc"`     // canonical pitch class, e.g. "F#"
	Octave    int    `json:"octave"` // meaningful only when HasOctave
	HasOctave bool   `json:"has_octave"`
}

// ParseNote parses scientific pitch notation: a letter A-G, optional
// accidental(s) (# or b), optional octave (may be negative, e.g. "C-1").
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("empty note")
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	offset, ok := letterOffsets[letter]
	if !ok {
		return Note{}, fmt.Errorf("invalid note letter in %q", s)
	}

	idx := 1
	for idx < len(s) {
		if s[idx] == '#' {
			offset++
			idx++
		} else if s[idx] == 'b' {
			offset--
			idx++
		} else {
			break
		}
	}

	semitone := ((offset % 12) + 12) % 12
	n := Note{PC: pitchClassNames[semitone]}

	if idx < len(s) {
		octave, err := strconv.Atoi(s[idx:])
		if err != nil {
			return Note{}, fmt.Errorf("invalid octave in note %q", s)
		}
		n.Octave = octave
		n.HasOctave = true
	}

	return n, nil
}

// Semitone returns the pitch-class semitone (0-11, C=0).
func (n Note) Semitone() int {
	for i, name := range pitchClassNames {
		if name == n.PC {
			return i
		}
	}
	return 0
}

// MIDI returns the MIDI note number (C4 = 60). The second return is false
// when the note has no octave information.
func (n Note) MIDI() (int, bool) {
	if !n.HasOctave {
		return 0, false
	}
	return (n.Octave+1)*12 + n.Semitone(), true
}

// Freq returns the equal-temperament frequency in Hz (A4 = 440), or 0 for
// a note without an octave.
func (n Note) Freq() float64 {
	midi, ok := n.MIDI()
	if !ok {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// String renders scientific pitch notation.
func (n Note) String() string {
	if !n.HasOctave {
		return n.PC
	}
	return fmt.Sprintf("%s%d", n.PC, n.Octave)
}

// NoteFromMIDI builds a concrete pitch from a MIDI number, using the
// canonical sharp spelling.
func NoteFromMIDI(midi int) Note {
	semitone := ((midi % 12) + 12) % 12
	return Note{
		PC:        pitchClassNames[semitone],
		Octave:    midi/12 - 1,
		HasOctave: true,
	}
}

// PitchClass returns the canonical pitch class of a note string, or "" if
// the note does not parse.
func PitchClass(s string) string {
	n, err := ParseNote(s)
	if err != nil {
		return ""
	}
	return n.PC
}

// MIDIValue parses a note string and returns its MIDI number. Returns
// (0, false) for bare pitch classes or malformed input.
func MIDIValue(s string) (int, bool) {
	n, err := ParseNote(s)
	if err != nil {
		return 0, false
	}
	return n.MIDI()
}

// NoteAtFret returns the sounding pitch of a string with the given open
// note pressed at fret. Fret 0 is the open string itself; negative frets
// (muted) and unparseable open notes yield "".
func NoteAtFret(open string, fret int) string {
	if fret < 0 {
		return ""
	}
	midi, ok := MIDIValue(open)
	if !ok {
		return ""
	}
	return NoteFromMIDI(midi + fret).String()
}

// SemitoneDistance is the absolute distance in semitones between two
// concrete pitches. Notes without octave information count as 0.
func SemitoneDistance(a, b string) int {
	ma, _ := MIDIValue(a)
	mb, _ := MIDIValue(b)
	d := mb - ma
	if d < 0 {
		d = -d
	}
	return d
}
