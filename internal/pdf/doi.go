// Package pdf feeds PDF text through the DOI extractor: papers usually
// state their DOI on the first page.
package pdf

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/refmend/refmend/internal/doi"
)

// maxPages bounds the scan; a DOI past page three is not the paper's own.
const maxPages = 3

// FindDOI extracts text from the first pages of a PDF and runs the DOI
// extractor over it. A PDF without a DOI is a normal outcome (ok false,
// nil error); only unreadable files error.
func FindDOI(ctx context.Context, path string, works doi.WorksFunc) (doi.Match, bool, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return doi.Match{}, false, err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if m, ok := doi.Extract(ctx, works, text); ok {
			return m, true, nil
		}
	}
	return doi.Match{}, false, nil
}

// ExtractText returns the plain text of the first n pages, for callers that
// want to run their own scans.
func ExtractText(path string, n int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if n <= 0 || n > r.NumPage() {
		n = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
