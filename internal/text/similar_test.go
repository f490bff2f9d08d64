package text

import (
	"strings"
	"testing"
)

func TestTitlesAreSimilar(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "The Origin of Species", "The Origin of Species", true},
		{"case and punctuation", "the origin, of species!", "The Origin of Species", true},
		{"leading article", "The Effect of X on Y", "Effect of X on Y", true},
		{"diacritics", "Études de cas", "Etudes de cas", true},
		{"markup", "<i>Drosophila</i> genetics", "''Drosophila'' genetics", true},
		{"ampersand", "Cells & Tissues", "Cells and Tissues", true},
		{"small edit distance", "Colour perception in bees", "Color perception in bees", true},
		{"subtitle stripped", "Climate Change: A Review", "Climate change", true},
		{"different works", "Quantum gravity and holography", "Soil bacteria of the Arctic tundra", false},
		{"one empty", "", "The Origin of Species", false},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitlesAreSimilar(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("TitlesAreSimilar(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTitlesAreDissimilarEntityAgreement(t *testing.T) {
	// Both the decoded and raw comparisons must agree before two titles
	// count as the same work.
	a := "Growth &amp; development"
	b := "Growth and development"
	if TitlesAreDissimilar(a, b) {
		t.Errorf("entity-encoded ampersand should not split a match")
	}
}

func TestDissimilarLongTitles(t *testing.T) {
	long := strings.Repeat("abcdefghij", 30)
	if TitlesAreDissimilar(long, long) {
		t.Error("identical long titles reported dissimilar")
	}
	// Length mismatch past the cutover is an immediate difference.
	if !TitlesAreDissimilar(long, long+"x") {
		t.Error("long titles of different length reported similar")
	}
	// Below-threshold overlap is a difference.
	other := strings.Repeat("zyxwvutsrq", 15) + strings.Repeat("abcdefghij", 15)
	if !TitlesAreDissimilar(long, other) {
		t.Error("half-overlapping long titles reported similar")
	}
}

func TestStripDiacritics(t *testing.T) {
	tests := []struct{ in, want string }{
		{"café", "cafe"},
		{"Müller-Lyer illusion", "Muller-Lyer illusion"},
		{"naïve", "naive"},
		{"plain ascii", "plain ascii"},
	}
	for _, tt := range tests {
		if got := StripDiacritics(tt.in); got != tt.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
