package fields

import (
	"reflect"
	"testing"
)

func TestPriorParametersChain(t *testing.T) {
	prior := PriorParameters("pmc")
	if len(prior) == 0 {
		t.Fatal("pmc has no priors")
	}
	// Nearest first: pmid directly precedes pmc.
	if prior[0] != "pmid" {
		t.Errorf("prior[0] = %q, want %q", prior[0], "pmid")
	}
	// The rest of the identifier chain and the bibliographic core follow.
	pos := map[string]int{}
	for i, f := range prior {
		pos[f] = i
	}
	for _, pair := range [][2]string{
		{"pmid", "jstor"},
		{"jstor", "doi"},
		{"doi", "publisher"},
		{"journal", "title"},
		{"title", "author1"},
	} {
		a, aok := pos[pair[0]]
		b, bok := pos[pair[1]]
		if !aok || !bok {
			t.Fatalf("chain missing %q or %q: %v", pair[0], pair[1], prior)
		}
		if a >= b {
			t.Errorf("%q (at %d) should come before %q (at %d)", pair[0], a, pair[1], b)
		}
	}
	// The field itself never appears in its own chain.
	if _, ok := pos["pmc"]; ok {
		t.Error("pmc appears in its own prior chain")
	}
}

func TestPriorParametersAuthorExpansion(t *testing.T) {
	prior := PriorParameters("title")
	want := []string{"author", "authors", "author1", "first1", "forename1", "initials1", "last1", "surname1"}
	if !reflect.DeepEqual(prior, want) {
		t.Errorf("PriorParameters(title) = %v, want %v", prior, want)
	}
}

func TestPriorParametersIndexed(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"first2", []string{"last2", "surname2"}},
		{"forename3", []string{"last3", "surname3"}},
		{"last1", nil},
		{"last3", []string{"first2", "forename2", "initials2"}},
		{"author2", []string{"author1"}},
	}
	for _, tt := range tests {
		got := PriorParameters(tt.field)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PriorParameters(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestPriorParametersUnknown(t *testing.T) {
	if got := PriorParameters("nonsense"); got != nil {
		t.Errorf("PriorParameters(nonsense) = %v, want nil", got)
	}
}

func TestEquivalentParameters(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"pmid", []string{"pmid", "pmc"}},
		{"pmc", []string{"pmid", "pmc"}},
		{"issue", []string{"issue", "number"}},
		{"accessdate", []string{"access-date", "accessdate"}},
		{"first2", []string{"first2", "forename2", "initials2"}},
		{"surname3", []string{"last3", "surname3"}},
		{"volume", []string{"volume"}},
	}
	for _, tt := range tests {
		got := EquivalentParameters(tt.field)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("EquivalentParameters(%q) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, f := range []string{"doi", "title", "author", "last2", "first10", "archive-date"} {
		if !Known(f) {
			t.Errorf("Known(%q) = false, want true", f)
		}
	}
	for _, f := range []string{"nonsense", ""} {
		if Known(f) {
			t.Errorf("Known(%q) = true, want false", f)
		}
	}
}
