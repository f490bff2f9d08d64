package doi

import (
	"context"
	"regexp"
	"strings"
)

// WorksFunc reports whether a DOI is confirmed to resolve. The extractor
// treats anything short of confirmation as "keep looking": an indeterminate
// probe must not cause a shorter prefix to be preferred over a longer one.
type WorksFunc func(ctx context.Context, doi string) bool

// Match is the extractor's result: the raw matched text (trailing noise
// removed) and the sanitized, validated DOI. The zero Match is the
// "no match" sentinel.
type Match struct {
	Raw string `json:"raw"`
	DOI string `json:"doi"`
}

var (
	// doiFindRe locates the first DOI-shaped substring in free text,
	// tolerating percent-encoded slashes, entity-encoded angle brackets and
	// embedded tags.
	doiFindRe = regexp.MustCompile(`10\.\d{4}\d?(?:/|%2[fF])(?:[^\s|"?&>]|&l?g?t;|<[^\s|"?&]*>)+`)
	// doiTailRe cuts the match at the first clearly-foreign boundary.
	doiTailRe = regexp.MustCompile(`^(.*?)(/abstract|/e?pdf|/full|</span>|[\s|"?]|</).*$`)
	// doiShapeRe is the general shape a shortening candidate must keep.
	doiShapeRe = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	// datedPathRe recognizes the URL false-positive pattern where a date
	// path immediately precedes DOI-shaped digits.
	datedPathRe = regexp.MustCompile(`(?:\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2}|\d{1,2}\.\d{1,2}\.\d{2,4})[/.\-]?10\.\d{4}`)
)

// Extract scans free text for an embedded DOI, trims trailing noise, and
// searches for the longest prefix the registry confirms. Malformed input is
// a normal outcome, not a failure: the second return is false when nothing
// usable was found. A nil works func skips validation and returns the
// sanitized candidate as-is.
func Extract(ctx context.Context, works WorksFunc, input string) (Match, bool) {
	raw := doiFindRe.FindString(input)
	if raw == "" {
		return Match{}, false
	}

	candidate := raw
	if m := doiTailRe.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}
	raw = stripTrailingNoise(candidate)
	candidate = Sanitize(candidate)

	if works == nil {
		return Match{Raw: raw, DOI: candidate}, true
	}

	// Longest valid prefix: each truncation strictly shortens the string,
	// so the search terminates.
	trimmed := candidate
	for doiShapeRe.MatchString(trimmed) {
		if works(ctx, trimmed) {
			return Match{Raw: raw, DOI: trimmed}, true
		}
		cut := strings.LastIndexAny(trimmed, "/.#?")
		if cut <= 0 {
			break
		}
		trimmed = trimmed[:cut]
	}

	// Nothing resolved. A date path right before the DOI-shaped digits is a
	// known false-positive pattern; better no DOI than a plausible-looking
	// wrong one.
	if datedPathRe.MatchString(input) {
		return Match{}, false
	}
	return Match{Raw: raw, DOI: candidate}, true
}
