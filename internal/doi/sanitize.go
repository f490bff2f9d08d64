// Package doi holds the pure, network-free parts of DOI handling: the
// sanitizer pipeline, the syntax filter that rules identifiers out before
// any probe, and the free-text extractor.
package doi

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	resolverPrefixRe = regexp.MustCompile(`(?i)^(?:https?://(?:dx\.)?doi\.org/|doi:\s*)`)
	sessionIDRe      = regexp.MustCompile(`(?i);jsessionid=[^;/?]*$`)
	fragmentRe       = regexp.MustCompile(`#[\w.\-]*$`)
	extensionRe      = regexp.MustCompile(`(?i)\.(?:pdf|html?|xml|jpe?g|png|docx?|epub)$`)
	pathSegmentRe    = regexp.MustCompile(`(?i)/(?:abstract|e?pdf|full|fulltext|summary|meta)$`)
	plosSuffixRe     = regexp.MustCompile(`\.[gst]\d{3}$`)
)

// entityDecoder undoes the small set of HTML-entity-encoded punctuation that
// shows up inside scraped DOIs.
var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&#60;", "<",
	"&#62;", ">",
	"&amp;", "&",
	"&#38;", "&",
	"&quot;", "",
	"&#34;", "",
)

// Sanitize runs the order-sensitive decode/trim pipeline over a raw DOI
// candidate. Pure and idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(s string) string {
	d := strings.TrimSpace(s)
	if u, err := url.PathUnescape(d); err == nil {
		d = u
	}
	// A trailing dot is nearly always the sentence period that followed the
	// DOI in running text.
	d = strings.TrimSuffix(d, ".")
	d = resolverPrefixRe.ReplaceAllString(d, "")
	// "+" is a valid DOI character but an URL-decoding hazard; keep it
	// percent-encoded so a later decode cannot turn it into a space.
	d = strings.ReplaceAll(d, "+", "%2B")
	d = entityDecoder.Replace(d)
	d = stripTrailingNoise(d)
	d = collapseSlashes(d)
	d = registrantFixups(d)
	return strings.TrimSpace(d)
}

// stripTrailingNoise removes session ids, fragments, file extensions and
// known landing-page path segments from the end of a candidate, repeating
// until nothing more comes off (a ".pdf" can hide behind a fragment).
func stripTrailingNoise(d string) string {
	for {
		prev := d
		d = sessionIDRe.ReplaceAllString(d, "")
		d = fragmentRe.ReplaceAllString(d, "")
		d = extensionRe.ReplaceAllString(d, "")
		d = pathSegmentRe.ReplaceAllString(d, "")
		if d == prev {
			return d
		}
	}
}

// collapseSlashes folds doubled slashes left behind by URL surgery. The
// registrant/suffix separator is unaffected since it is a single slash.
func collapseSlashes(d string) string {
	for strings.Contains(d, "//") {
		d = strings.ReplaceAll(d, "//", "/")
	}
	return d
}

// registrantFixups handles registrants whose landing URLs append path
// material that looks like part of the identifier but is not. PLOS article
// DOIs grow ".g001"/".t002"/".s004" figure, table and supplement suffixes.
func registrantFixups(d string) string {
	if strings.HasPrefix(d, "10.1371/") {
		d = plosSuffixRe.ReplaceAllString(d, "")
	}
	return d
}
