package theory

import "testing"

func TestDetectInversion(t *testing.T) {
	tests := []struct {
		name     string
		notes    []string
		root     string
		expected string
	}{
		{name: "root position", notes: []string{"C3", "E3", "G3"}, root: "C", expected: InversionRoot},
		{name: "first inversion", notes: []string{"E3", "C4", "G4"}, root: "C", expected: InversionFirst},
		{name: "second inversion", notes: []string{"G2", "C4", "E4"}, root: "C", expected: InversionSecond},
		{name: "third inversion", notes: []string{"B2", "C4", "E4", "G4"}, root: "C", expected: InversionThird},
		{name: "unusual bass degree", notes: []string{"D3", "C4"}, root: "C", expected: "Inversion (2M)"},
		{name: "minor third bass", notes: []string{"Eb3", "C4", "G4"}, root: "C", expected: InversionFirst},
		{name: "no notes", notes: nil, root: "C", expected: ""},
		{name: "no root", notes: []string{"C4"}, root: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectInversion(tt.notes, tt.root); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
