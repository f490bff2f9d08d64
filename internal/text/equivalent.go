package text

import (
	"regexp"
	"strings"
)

var (
	pipedWikilinkRe = regexp.MustCompile(`\[\[[^\[\]|]*\|([^\[\]|]*)\]\]`)
	plainWikilinkRe = regexp.MustCompile(`\[\[([^\[\]|]*)\]\]`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
	synonymRes      []synonymRule
)

type synonymRule struct {
	re    *regexp.Regexp
	short string
}

func init() {
	for _, pair := range journalSynonyms {
		synonymRes = append(synonymRes, synonymRule{
			re:    regexp.MustCompile(`\b` + pair[0] + `\b`),
			short: pair[1],
		})
	}
}

// StrRemoveIrrelevantBits reduces a publisher or journal name to the parts
// that carry identity: wikilink markup unwrapped, a leading article and all
// punctuation dropped, standard bibliographic contractions applied
// (Proceedings→Proc and friends). Case-insensitive by construction.
func StrRemoveIrrelevantBits(s string) string {
	s = pipedWikilinkRe.ReplaceAllString(s, "$1")
	s = plainWikilinkRe.ReplaceAllString(s, "$1")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "the ")
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '.', ',', ':', ';', '\'', '"', '(', ')', '-', '–', '—':
			// drop
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	for _, rule := range synonymRes {
		s = rule.re.ReplaceAllString(s, rule.short)
	}
	return multiSpaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StrEquivalent reports whether two publisher/journal names are the same
// despite formatting drift.
func StrEquivalent(a, b string) bool {
	return StrRemoveIrrelevantBits(a) == StrRemoveIrrelevantBits(b)
}
