package text

import "testing"

func TestStrRemoveIrrelevantBits(t *testing.T) {
	tests := []struct{ in, want string }{
		{"The Journal of Physics", "j of physics"},
		{"[[Nature (journal)|Nature]]", "nature"},
		{"[[Nature]]", "nature"},
		{"Proc. Natl. Acad. Sci.", "proc natl acad sci"},
		{"Annual Review of Biochemistry", "annu rev of biochemistry"},
		{"Science & Society", "sci and soc"},
		{"  spaced   out  ", "spaced out"},
	}
	for _, tt := range tests {
		if got := StrRemoveIrrelevantBits(tt.in); got != tt.want {
			t.Errorf("StrRemoveIrrelevantBits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStrEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"wikilink vs plain", "[[Nature (journal)|Nature]]", "Nature", true},
		{"contraction", "Journal of Physics", "J Physics", false},
		{"leading article", "The Lancet", "Lancet", true},
		{"ampersand", "Science & Society", "Science and Society", true},
		{"punctuation drift", "Proc. Natl. Acad. Sci.", "Proc Natl Acad Sci", true},
		{"different journals", "Nature", "Cell", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrEquivalent(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("StrEquivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
