package text

import "strings"

// okinaNames are multi-codepoint graphemes that the quote regexes would
// otherwise corrupt. Shielded via a placeholder round trip.
var okinaNames = []string{"Hawaiʻi", "Oʻahu", "Kauaʻi"}

// singleQuoteVariants maps curly/angled/typewriter single-quote forms and
// their HTML entities to a straight apostrophe.
var singleQuoteVariants = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"‚", "'", // single low-9
	"‛", "'", // single high-reversed-9
	"′", "'", // prime
	"‵", "'", // reversed prime
	"`", "'", // grave accent
	"´", "'", // acute accent
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&sbquo;", "'",
	"&prime;", "'",
	"&#8216;", "'",
	"&#8217;", "'",
	"&#x2018;", "'",
	"&#x2019;", "'",
)

// doubleQuoteVariants maps curly/low/prime double-quote forms and their HTML
// entities to a straight double quote.
var doubleQuoteVariants = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9
	"‟", `"`, // double high-reversed-9
	"″", `"`, // double prime
	"‶", `"`, // reversed double prime
	"&ldquo;", `"`,
	"&rdquo;", `"`,
	"&bdquo;", `"`,
	"&Prime;", `"`,
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&#x201C;", `"`,
	"&#x201D;", `"`,
)

// aggressiveSingleVariants are modifier-letter apostrophes that legitimately
// appear inside words (ʻokina and friends); only the aggressive mode folds
// them, after the protected Hawaiian names are shielded.
var aggressiveSingleVariants = strings.NewReplacer(
	"ʻ", "'", // modifier letter turned comma (ʻokina)
	"ʼ", "'", // modifier letter apostrophe
	"ʽ", "'", // modifier letter reversed comma
)

// StraightenQuotes maps Unicode and HTML-entity quote variants to plain
// straight quotes. Guillemets are only converted when an opening and a
// closing variant both appear, so that strings using one as a decorative
// bullet ("Jobs › Iowa › Cows") are left alone. The aggressive mode
// additionally folds modifier-letter apostrophes, shielding a handful of
// Hawaiian names that spell them as part of the word.
func StraightenQuotes(s string, aggressive bool) string {
	if s == "" {
		return s
	}

	shielded := map[string]string{}
	if aggressive {
		for i, name := range okinaNames {
			if strings.Contains(s, name) {
				token := Placeholder(i)
				shielded[token] = name
				s = strings.ReplaceAll(s, name, token)
			}
		}
		s = aggressiveSingleVariants.Replace(s)
	}

	s = singleQuoteVariants.Replace(s)
	s = doubleQuoteVariants.Replace(s)

	if strings.Contains(s, "«") && strings.Contains(s, "»") {
		s = strings.ReplaceAll(s, "«", `"`)
		s = strings.ReplaceAll(s, "»", `"`)
	}
	if strings.Contains(s, "‹") && strings.Contains(s, "›") {
		s = strings.ReplaceAll(s, "‹", "'")
		s = strings.ReplaceAll(s, "›", "'")
	}

	for token, name := range shielded {
		s = strings.ReplaceAll(s, token, name)
	}
	return s
}
