package doi

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "10.1000/182", "10.1000/182"},
		{"whitespace", "  10.1000/182\n", "10.1000/182"},
		{"resolver url", "https://doi.org/10.1000/182", "10.1000/182"},
		{"dx resolver url", "http://dx.doi.org/10.1000/182", "10.1000/182"},
		{"doi prefix", "doi: 10.1000/182", "10.1000/182"},
		{"trailing period", "10.1000/182.", "10.1000/182"},
		{"percent encoded slash", "10.1000%2F182", "10.1000/182"},
		{"pdf extension", "10.1000/182.pdf", "10.1000/182"},
		{"full segment", "10.1002/jclp.20155/full", "10.1002/jclp.20155"},
		{"jsessionid", "10.1000/182;jsessionid=ABC123", "10.1000/182"},
		{"fragment", "10.1000/182#page-1", "10.1000/182"},
		{"extension behind fragment", "10.1000/182.pdf#page-1", "10.1000/182"},
		{"entity lt gt", "10.1002/1097-0142(200101)91:2&lt;394::AID-CNCR1013&gt;3.0.CO;2-9",
			"10.1002/1097-0142(200101)91:2<394::AID-CNCR1013>3.0.CO;2-9"},
		{"plus preserved as escape", "10.1007/s00214-007-0303-9+x", "10.1007/s00214-007-0303-9%2Bx"},
		{"doubled slash", "10.1000//182", "10.1000/182"},
		{"plos figure suffix", "10.1371/journal.pone.0000100.g001", "10.1371/journal.pone.0000100"},
		{"plos table suffix", "10.1371/journal.pmed.0020124.t002", "10.1371/journal.pmed.0020124"},
		{"non plos dotted suffix kept", "10.1234/journal.pone.0000100.g001", "10.1234/journal.pone.0000100.g001"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"https://doi.org/10.1000/182.pdf",
		"10.1007/s00214-007-0303-9+x",
		"10.1000%2F182",
		"10.1371/journal.pone.0000100.g001",
		"10.1002/1097-0142(200101)91:2&lt;394::AID-CNCR1013&gt;3.0.CO;2-9",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
