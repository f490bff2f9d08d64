package text

import (
	"regexp"
	"strings"
)

var (
	mathSpanRe      = regexp.MustCompile(`(?s)<\s*math\s*>.*?<\s*/\s*math\s*>`)
	trailingPunctRe = regexp.MustCompile(`[;.,]+$`)
	externalLinkRe  = regexp.MustCompile(`^\[https?://[^\s\]]+(?: [^\]]*)?\]$`)
	placeholderRe   = regexp.MustCompile(`\s?` + placeholderMark + `_\d+\s?`)
)

// wikiEscaper converts wiki-markup-significant characters to numeric
// character references so a value can be dropped into a template parameter.
var wikiEscaper = strings.NewReplacer(
	"[", "&#91;",
	"]", "&#93;",
	"|", "&#124;",
	"{", "&#123;",
	"}", "&#125;",
)

// protectMath swaps <math>...</math> spans for placeholders so the escaping
// passes cannot mangle their contents. restoreSpans undoes the swap.
func protectMath(s string, re *regexp.Regexp) (string, []string) {
	spans := re.FindAllString(s, -1)
	for i, span := range spans {
		s = strings.Replace(s, span, Placeholder(i), 1)
	}
	return s, spans
}

func restoreSpans(s string, spans []string) string {
	for i, span := range spans {
		s = strings.Replace(s, Placeholder(i), span, 1)
	}
	return s
}

// SanitizeString prepares newly-found data for substitution into a citation
// template: wiki-significant brackets and pipes become character references,
// trailing punctuation runs are stripped, embedded math markup survives
// untouched. Bracketed external links are returned unchanged, as is one
// journal title whose parenthetical is the only thing distinguishing it.
func SanitizeString(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "Science (New York, N.Y.)" {
		return "Science"
	}
	if externalLinkRe.MatchString(trimmed) {
		return s
	}

	out, spans := protectMath(s, mathSpanRe)
	out = trailingPunctRe.ReplaceAllString(out, "")
	out = wikiEscaper.Replace(out)
	out = strings.TrimSpace(out)
	return restoreSpans(out, spans)
}

// StripPlaceholders removes any leftover protection tokens. Comparison code
// calls this so a shielded span never influences similarity.
func StripPlaceholders(s string) string {
	return placeholderRe.ReplaceAllString(s, " ")
}
