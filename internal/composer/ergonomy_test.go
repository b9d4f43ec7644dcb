package composer

import "testing"

func TestErgonomyScore_Bounds(t *testing.T) {
	for _, chord := range []string{"C", "G", "Am", "F#m7", "Bdim"} {
		for _, v := range SearchVoicings(chord, standardTuning, 25) {
			score := ErgonomyScore(v, standardTuning)
			if score < 0 || score > 100 {
				t.Errorf("%s voicing %v: score %d out of range", chord, v.Frets, score)
			}
			if score != v.ErgonomyScore {
				t.Errorf("%s voicing %v: stored score %d disagrees with recomputed %d", chord, v.Frets, v.ErgonomyScore, score)
			}
		}
	}
}

func TestErgonomyScore_Exact(t *testing.T) {
	// Base 60, +20 gapless, +10 stretch <= 2, +5 position <= 7. The
	// chord name is deliberately unparseable so the bass-root bonus
	// stays out of the arithmetic.
	v := ChordVoicing{
		Chord:    "??",
		Frets:    []int{-1, 6, 5, 7, -1, -1},
		Notes:    []string{"x", "y", "z"},
		BassNote: "",
	}
	if score := ErgonomyScore(v, standardTuning); score != 95 {
		t.Errorf("expected 95, got %d", score)
	}

	// Same shape with the middle string muted: the +20 gapless bonus
	// flips to a -25 gap penalty.
	gapped := ChordVoicing{
		Chord:    "??",
		Frets:    []int{-1, 6, -1, 7, 5, -1},
		Notes:    []string{"x", "y", "z"},
		BassNote: "",
	}
	if score := ErgonomyScore(gapped, standardTuning); score != 50 {
		t.Errorf("expected 50, got %d", score)
	}
}

func TestErgonomyScore_GapPenalty(t *testing.T) {
	gapless := ChordVoicing{Chord: "??", Frets: []int{-1, 6, 5, 7, -1, -1}, Notes: []string{"a", "b", "c"}}
	gapped := ChordVoicing{Chord: "??", Frets: []int{-1, 6, -1, 7, 5, -1}, Notes: []string{"a", "b", "c"}}

	diff := ErgonomyScore(gapless, standardTuning) - ErgonomyScore(gapped, standardTuning)
	if diff < 25 {
		t.Errorf("a gap should cost at least 25 points, cost %d", diff)
	}
}

func TestErgonomyScore_BassRootBonus(t *testing.T) {
	rootBass := ChordVoicing{
		Chord:    "C",
		Frets:    []int{-1, 8, 7, 9, -1, -1},
		Notes:    []string{"a", "b", "c"},
		BassNote: "C4",
	}
	otherBass := rootBass
	otherBass.BassNote = "E4"

	withRoot := ErgonomyScore(rootBass, standardTuning)
	without := ErgonomyScore(otherBass, standardTuning)
	if withRoot-without != 8 {
		t.Errorf("expected an 8 point bass-root bonus, got %d (%d vs %d)", withRoot-without, withRoot, without)
	}
}

func TestErgonomyScore_StretchPenalty(t *testing.T) {
	compact := ChordVoicing{Chord: "??", Frets: []int{-1, 5, 5, 7, -1, -1}, Notes: []string{"a", "b", "c"}}
	wide := ChordVoicing{Chord: "??", Frets: []int{-1, 5, 8, 12, -1, -1}, Notes: []string{"a", "b", "c"}}

	if ErgonomyScore(wide, standardTuning) >= ErgonomyScore(compact, standardTuning) {
		t.Error("a seven fret stretch should score below a two fret one")
	}
}

func TestErgonomyScore_BarrePenalty(t *testing.T) {
	// Same fret multiset, same stretch; only the adjacency differs.
	barre := ChordVoicing{Chord: "??", Frets: []int{5, 5, 6, 7, -1, -1}, Notes: []string{"a", "b", "c", "d"}}
	noBarre := ChordVoicing{Chord: "??", Frets: []int{5, 7, 6, 5, -1, -1}, Notes: []string{"a", "b", "c", "d"}}

	barreScore := ErgonomyScore(barre, standardTuning)
	openScore := ErgonomyScore(noBarre, standardTuning)
	if barreScore >= openScore {
		t.Errorf("barre shape should score below the equivalent non-barre shape: %d >= %d", barreScore, openScore)
	}
}

func TestErgonomyScore_OpenStringBonus(t *testing.T) {
	// Base 60, -25 one gap, +10 stretch, +15 low position, +10 one
	// distinct fret, -8 barre, +10 two open strings, +5 four notes.
	v := ChordVoicing{
		Chord: "??",
		Frets: []int{0, -1, 2, 2, 0, -1},
		Notes: []string{"a", "b", "c", "d"},
	}
	if score := ErgonomyScore(v, standardTuning); score != 77 {
		t.Errorf("expected 77, got %d", score)
	}

	// Opens at the span edges count the same as interior ones.
	edge := ChordVoicing{Chord: "??", Frets: []int{0, -1, 6, 7, 0, -1}, Notes: []string{"a", "b", "c"}}
	inner := ChordVoicing{Chord: "??", Frets: []int{6, -1, 0, 0, 7, -1}, Notes: []string{"a", "b", "c"}}
	if e, i := ErgonomyScore(edge, standardTuning), ErgonomyScore(inner, standardTuning); e != i {
		t.Errorf("edge and interior opens should score alike: %d vs %d", e, i)
	}
}

func TestErgonomyScore_AllOpen(t *testing.T) {
	// No pressed frets: only the gapless and open-string bonuses apply.
	v := ChordVoicing{
		Chord: "??",
		Frets: []int{0, 0, 0, -1, -1, -1},
		Notes: []string{"a", "b", "c"},
	}
	if score := ErgonomyScore(v, standardTuning); score != 95 {
		t.Errorf("expected 95, got %d", score)
	}
}
