package text

import (
	"html"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Similarity thresholds. These are empirically tuned calibration points
// carried over from years of production tuning, not derived values; the
// tests pin them, they do not justify them.
const (
	// maxTitleEditDistance is the Levenshtein budget under which two
	// normalized titles still denote the same work.
	maxTitleEditDistance = 3
	// longTitleCutover is the normalized length above which edit distance
	// is too slow and an overlap ratio is used instead.
	longTitleCutover = 254
	// minLongTitleOverlap is the character-overlap ratio long titles must
	// reach to count as the same work.
	minLongTitleOverlap = 0.98
)

// StripDiacritics removes combining marks after canonical decomposition,
// folding "é" to "e" and so on. Returns the input unchanged if the
// transform fails on unusual input.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// TitlesAreSimilar decides whether two differently-formatted titles denote
// the same work. Diacritic stripping is allowed to recover false negatives
// caused by encoding mismatches, and a subtitle-stripped comparison
// recovers "Foo: A Review" against "Foo".
func TitlesAreSimilar(a, b string) bool {
	if !TitlesAreDissimilar(a, b) {
		return true
	}
	if !TitlesAreDissimilar(StripDiacritics(a), StripDiacritics(b)) {
		return true
	}
	sa, sb := titleSimple(a), titleSimple(b)
	if (sa != a || sb != b) && !TitlesAreDissimilar(sa, sb) {
		return true
	}
	return false
}

// TitlesAreDissimilar reports whether a freshly fetched title and a database
// title denote different works. The input is compared twice, once
// entity-decoded and once as-is, and both comparisons must agree that the
// titles match: two independent noisy signals, biased toward flagging
// genuine difference.
func TitlesAreDissimilar(inTitle, dbTitle string) bool {
	inTitle = StripPlaceholders(inTitle)
	dbTitle = StripPlaceholders(dbTitle)
	if dissimilarNormalized(html.UnescapeString(inTitle), html.UnescapeString(dbTitle)) {
		return true
	}
	return dissimilarNormalized(inTitle, dbTitle)
}

func dissimilarNormalized(a, b string) bool {
	a = normalizeForComparison(a)
	b = normalizeForComparison(b)
	if a == "" || b == "" {
		return a != b
	}
	if len(a) > longTitleCutover || len(b) > longTitleCutover {
		// Edit distance is unbounded at this length; require equal length
		// and near-total character overlap instead.
		if len(a) != len(b) {
			return true
		}
		return characterOverlap(a, b) < minLongTitleOverlap
	}
	return levenshtein.ComputeDistance(a, b) > maxTitleEditDistance
}

// markupRemover drops the markup tokens that routinely differ between
// sources without changing the work denoted.
var markupRemover = strings.NewReplacer(
	"<i>", "", "</i>", "",
	"<em>", "", "</em>", "",
	"<b>", "", "</b>", "",
	"''", "",
	"&", "and",
)

// normalizeForComparison reduces a title to the parts that carry identity:
// diacritics folded, case dropped, markup, punctuation and whitespace
// removed, a leading article ignored.
func normalizeForComparison(s string) string {
	s = strings.ToLower(StripDiacritics(s))
	s = markupRemover.Replace(s)
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "the ")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// characterOverlap returns the ratio of shared characters (multiset
// intersection over the longer length).
func characterOverlap(a, b string) float64 {
	counts := map[rune]int{}
	for _, r := range a {
		counts[r]++
	}
	shared := 0
	total := 0
	for _, r := range b {
		total++
		if counts[r] > 0 {
			counts[r]--
			shared++
		}
	}
	if n := len([]rune(a)); n > total {
		total = n
	}
	if total == 0 {
		return 1
	}
	return float64(shared) / float64(total)
}

// titleSimple strips the decorations that publishers bolt onto a title
// without changing the work: a leading article, a trailing subtitle after
// the last colon, trailing punctuation.
func titleSimple(s string) string {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)
	if strings.HasPrefix(lower, "the ") {
		t = t[4:]
	}
	if i := strings.LastIndex(t, ":"); i > 0 {
		t = strings.TrimSpace(t[:i])
	}
	return strings.TrimRight(t, " .")
}
