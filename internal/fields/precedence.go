// Package fields answers ordering questions about citation template
// parameters: which fields should already be populated before a given one
// is considered missing-and-fillable, and which fields are interchangeable
// aliases. The precedence relation is a static chain, built once at init;
// there is no graph traversal at call time.
package fields

import (
	"regexp"
	"strconv"
)

// predecessor maps each field to the field that should be filled before it.
// Author-name fields head the chain, identifiers come after the
// bibliographic core, url/archive fields last.
var predecessor = map[string]string{
	"title":        "author",
	"chapter":      "title",
	"journal":      "title",
	"newspaper":    "title",
	"volume":       "journal",
	"issue":        "volume",
	"number":       "volume",
	"page":         "issue",
	"pages":        "issue",
	"location":     "pages",
	"publisher":    "location",
	"doi":          "publisher",
	"jstor":        "doi",
	"pmid":         "jstor",
	"pmc":          "pmid",
	"arxiv":        "pmc",
	"bibcode":      "arxiv",
	"hdl":          "bibcode",
	"isbn":         "hdl",
	"issn":         "isbn",
	"url":          "issn",
	"access-date":  "url",
	"archive-url":  "access-date",
	"archive-date": "archive-url",
}

// expansion lists the concrete parameter names a chain node stands for.
// The author node flattens to every first-author name variant.
var expansion = map[string][]string{
	"author": {"author", "authors", "author1", "first1", "forename1", "initials1", "last1", "surname1"},
	"issue":  {"issue", "number"},
	"pages":  {"page", "pages"},
}

// equivalenceGroups are sets of interchangeable parameter names.
var equivalenceGroups = [][]string{
	{"pmid", "pmc"},
	{"issue", "number"},
	{"page", "pages"},
	{"author", "authors", "author1", "first1", "forename1", "initials1", "last1", "surname1"},
	{"access-date", "accessdate"},
	{"archive-url", "archiveurl"},
	{"archive-date", "archivedate"},
}

// nameAliases groups the per-index author-name parameter stems.
var (
	givenNameStems  = []string{"first", "forename", "initials"}
	familyNameStems = []string{"last", "surname"}
)

var indexedFieldRe = regexp.MustCompile(`^(\D+)(\d+)$`)

// priorTable is the flattened precedence chain for every non-indexed field,
// built once at startup.
var priorTable = map[string][]string{}

// equivalenceTable maps each member of a group to the full group.
var equivalenceTable = map[string][]string{}

func init() {
	for field := range predecessor {
		priorTable[field] = walkChain(field)
	}
	for _, group := range equivalenceGroups {
		for _, member := range group {
			equivalenceTable[member] = group
		}
	}
}

// walkChain collects the expanded predecessor list nearest-first.
func walkChain(field string) []string {
	var out []string
	seen := map[string]bool{field: true}
	for cur := predecessor[field]; cur != "" && !seen[cur]; cur = predecessor[cur] {
		seen[cur] = true
		if names, ok := expansion[cur]; ok {
			out = append(out, names...)
			continue
		}
		out = append(out, cur)
	}
	return out
}

// PriorParameters returns the ordered fields that should be populated
// before the given one, nearest predecessor first. Indexed author-name
// fields (first2, last3, ...) decrement recursively to their own chain:
// a given name waits on the matching family name, a family name waits on
// the previous author's given names, and any other indexed field waits on
// its predecessor index.
func PriorParameters(field string) []string {
	if m := indexedFieldRe.FindStringSubmatch(field); m != nil {
		return indexedPriors(m[1], m[2])
	}
	if chain, ok := priorTable[field]; ok {
		out := make([]string, len(chain))
		copy(out, chain)
		return out
	}
	return nil
}

func indexedPriors(stem, index string) []string {
	n, err := strconv.Atoi(index)
	if err != nil || n < 1 {
		return nil
	}
	for _, s := range givenNameStems {
		if stem == s {
			return []string{"last" + index, "surname" + index}
		}
	}
	for _, s := range familyNameStems {
		if stem == s {
			if n == 1 {
				return nil
			}
			prev := strconv.Itoa(n - 1)
			return []string{"first" + prev, "forename" + prev, "initials" + prev}
		}
	}
	if n == 1 {
		return PriorParameters(stem)
	}
	return []string{stem + strconv.Itoa(n-1)}
}

// EquivalentParameters returns the set of parameter names interchangeable
// with the given one, including itself. Indexed given/family name fields
// expand to their stem variants at the same index.
func EquivalentParameters(field string) []string {
	if group, ok := equivalenceTable[field]; ok {
		out := make([]string, len(group))
		copy(out, group)
		return out
	}
	if m := indexedFieldRe.FindStringSubmatch(field); m != nil {
		stem, index := m[1], m[2]
		for _, s := range givenNameStems {
			if stem == s {
				return []string{"first" + index, "forename" + index, "initials" + index}
			}
		}
		for _, s := range familyNameStems {
			if stem == s {
				return []string{"last" + index, "surname" + index}
			}
		}
	}
	return []string{field}
}

// Known reports whether the field participates in the precedence chain.
func Known(field string) bool {
	if _, ok := priorTable[field]; ok {
		return true
	}
	if field == "author" {
		return true
	}
	return indexedFieldRe.MatchString(field)
}
