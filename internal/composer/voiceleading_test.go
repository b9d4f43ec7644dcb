package composer

import "testing"

func TestVoiceLeadingScore_Identity(t *testing.T) {
	v := ChordVoicing{Notes: []string{"E4", "C4", "G3", "C3"}}
	if score := VoiceLeadingScore(v, v); score != 100 {
		t.Errorf("no movement should score 100, got %f", score)
	}
}

func TestVoiceLeadingScore_Empty(t *testing.T) {
	v := ChordVoicing{Notes: []string{"E4", "C4", "G3"}}
	empty := ChordVoicing{}
	if score := VoiceLeadingScore(v, empty); score != 0 {
		t.Errorf("expected 0 for an empty voicing, got %f", score)
	}
	if score := VoiceLeadingScore(empty, v); score != 0 {
		t.Errorf("expected 0 for an empty voicing, got %f", score)
	}
}

func TestVoiceLeadingScore_Exact(t *testing.T) {
	// Every voice moves two semitones: 100 - 10*2 = 80.
	from := ChordVoicing{Notes: []string{"G3", "E3", "C3"}}
	to := ChordVoicing{Notes: []string{"A3", "F#3", "D3"}}
	if score := VoiceLeadingScore(from, to); score != 80 {
		t.Errorf("expected 80, got %f", score)
	}
}

func TestVoiceLeadingScore_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b ChordVoicing
	}{
		{
			a: ChordVoicing{Notes: []string{"E4", "C4", "G3", "C3"}},
			b: ChordVoicing{Notes: []string{"D4", "B3", "G3", "B2"}},
		},
		{
			// Different voice counts: aligned from the bass end.
			a: ChordVoicing{Notes: []string{"E4", "C4", "G3"}},
			b: ChordVoicing{Notes: []string{"G4", "D4", "B3", "G3", "G2"}},
		},
	}

	for i, p := range pairs {
		ab := VoiceLeadingScore(p.a, p.b)
		ba := VoiceLeadingScore(p.b, p.a)
		if ab != ba {
			t.Errorf("pair %d: score not symmetric: %f vs %f", i, ab, ba)
		}
	}
}

func TestVoiceLeadingScore_Floor(t *testing.T) {
	// Two octaves of movement per voice pushes past the floor.
	from := ChordVoicing{Notes: []string{"C3", "G2", "C2"}}
	to := ChordVoicing{Notes: []string{"C5", "G4", "C4"}}
	if score := VoiceLeadingScore(from, to); score != 0 {
		t.Errorf("expected the score floored at 0, got %f", score)
	}
}

func TestVoiceLeadingScore_BassEndAlignment(t *testing.T) {
	// The shorter list's voices pair with the bass end of the longer
	// one, so the longer voicing's extra treble notes are ignored.
	from := ChordVoicing{Notes: []string{"C3"}}
	to := ChordVoicing{Notes: []string{"G5", "E5", "C3"}}
	if score := VoiceLeadingScore(from, to); score != 100 {
		t.Errorf("matching basses should score 100, got %f", score)
	}
}
