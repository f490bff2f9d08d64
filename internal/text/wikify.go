package text

import (
	"html"
	"regexp"
	"strings"
)

var (
	mmlMathRe      = regexp.MustCompile(`(?s)<(?:mml:)?math[^>]*>(.*?)</(?:mml:)?math>`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	italicOpenRe   = regexp.MustCompile(`(?i)<i>|<em>|<emphasis[^>]*type="italic"[^>]*>`)
	italicCloseRe  = regexp.MustCompile(`(?i)</i>|</em>|</emphasis>`)
	boldTagRe      = regexp.MustCompile(`(?i)</?strong>`)
	breakTagRe     = regexp.MustCompile(`(?i)</?p>|<br\s*/?>`)
	titleTagRe     = regexp.MustCompile(`(?i)</?title>`)
	coverPrefixRe  = regexp.MustCompile(`(?i)^from the cover:\s*`)
	mmlPrefixStrip = strings.NewReplacer("<mml:", "<", "</mml:", "</")
)

// FormatTitleText canonicalizes a title fetched from an external source into
// publishable wiki text: entities decoded, whitespace collapsed, trailing
// artifacts stripped, emphasis tags converted to wiki markup, casing fixed,
// wiki-significant characters escaped. Embedded math markup rides through
// the whole pipeline behind placeholders. Total: worst case the input comes
// back lightly normalized.
func FormatTitleText(title string) string {
	mathSpans := mmlMathRe.FindAllStringSubmatch(title, -1)
	restored := make([]string, len(mathSpans))
	for i, m := range mathSpans {
		restored[i] = "<math>" + mmlPrefixStrip.Replace(m[1]) + "</math>"
		title = strings.Replace(title, m[0], Placeholder(i), 1)
	}

	title = html.UnescapeString(title)
	title = whitespaceRe.ReplaceAllString(title, " ")
	title = strings.TrimSuffix(title, " ")
	title = strings.TrimSuffix(title, "&nbsp;")
	title = trimTrailingPeriod(title)
	title = strings.TrimSuffix(title, "*")
	title = strings.TrimSpace(title)

	title = TitleCapitalization(title, true)

	title = italicOpenRe.ReplaceAllString(title, "''")
	title = italicCloseRe.ReplaceAllString(title, "''")
	title = boldTagRe.ReplaceAllString(title, "'''")
	title = breakTagRe.ReplaceAllString(title, " ")
	title = titleTagRe.ReplaceAllString(title, "")
	title = coverPrefixRe.ReplaceAllString(title, "")
	title = strings.ReplaceAll(title, "&lt;", "<")
	title = strings.ReplaceAll(title, "&gt;", ">")
	// SanitizeString trims trailing punctuation runs; an abbreviation
	// period that survived trimTrailingPeriod has to survive this too.
	keepDot := strings.HasSuffix(title, ".") && trimTrailingPeriod(title) == title
	title = SanitizeString(title)
	if keepDot && !strings.HasSuffix(title, ".") {
		title += "."
	}

	for i, span := range restored {
		title = strings.Replace(title, Placeholder(i), span, 1)
	}
	return title
}

// trimTrailingPeriod strips a trailing period artifact while keeping one
// that belongs to an abbreviation: the last whitespace-delimited word
// carries exactly one period and the word before it carries none.
func trimTrailingPeriod(s string) string {
	if !strings.HasSuffix(s, ".") {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	last := words[len(words)-1]
	prev := ""
	if len(words) > 1 {
		prev = words[len(words)-2]
	}
	if strings.Count(last, ".") == 1 && !strings.Contains(prev, ".") {
		return s
	}
	return strings.TrimSuffix(s, ".")
}
