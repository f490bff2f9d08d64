package doi

import (
	"strings"
	"unicode"

	"github.com/refmend/refmend/internal/text"
)

// testRegistrant is the reserved registrant used for DOI examples and test
// deposits; nothing under it identifies a real work.
const testRegistrant = "5555"

// DefinitelyInvalid reports whether a trimmed DOI cannot possibly resolve,
// without any network access. The filter is conservative: it only returns
// true for known-bad shapes, everything else falls through to network
// validation. Shape rules are applied only inside the DOI namespace
// ("10."-prefixed); other handle namespaces are judged solely on having a
// registrant/suffix separator.
func DefinitelyInvalid(d string) bool {
	if !strings.Contains(d, "/") {
		return true
	}
	if strings.Contains(d, text.PlaceholderMark) {
		return true
	}
	if !strings.HasPrefix(d, "10.") {
		return false
	}

	registrant := d[len("10."):strings.Index(d, "/")]
	if registrant == "" {
		return true
	}
	for _, r := range registrant {
		if !unicode.IsDigit(r) && r != '.' {
			return true
		}
	}

	digits := registrant
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		digits = digits[:dot]
	}
	switch {
	case len(digits) < 4:
		return true
	case len(digits) > 5:
		return true
	case digits == testRegistrant:
		return true
	case len(digits) == 5 && (digits[0] < '1' || digits[0] > '6'):
		// No five-digit registrant block outside 1xxxx-6xxxx has been
		// allocated.
		return true
	}
	return false
}
