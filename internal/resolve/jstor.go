package resolve

import (
	"context"
	"strings"
)

// jstorDOIPrefix is the registrant JSTOR deposits its stable ids under.
const jstorDOIPrefix = "10.2307/"

// FieldContainer is the slice of the citation object model this package
// needs: presence checks and add-only writes. The full template model lives
// upstream.
type FieldContainer interface {
	Has(field string) bool
	AddIfNew(field, value string) bool
}

// CheckDOIForJSTOR derives a JSTOR stable id from a 10.2307 DOI and, when
// JSTOR confirms it serves a citation for it, records it on the container.
// A container that already names a jstor id is left alone.
func (v *Validator) CheckDOIForJSTOR(ctx context.Context, id string, fields FieldContainer) {
	if fields.Has("jstor") {
		return
	}
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(id, jstorDOIPrefix) {
		return
	}
	stable := strings.TrimPrefix(id, jstorDOIPrefix)
	if stable == "" || strings.ContainsAny(stable, "/?#") {
		return
	}
	if v.prober.ProbeJSTOR(ctx, stable) == Valid {
		fields.AddIfNew("jstor", stable)
	}
}
