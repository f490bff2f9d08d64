package resolve

import (
	"context"
	"strings"

	"github.com/refmend/refmend/internal/doi"
)

// Validator composes the syntax filter, the resolution cache and a prober
// into the public identifier checks. It is safe to call at high volume:
// memoization and the prober's throttle are the protection, calls are
// assumed sequential.
type Validator struct {
	cache  *Cache
	prober Prober
}

// NewValidator wires a validator to an explicit cache; no hidden
// process-lifetime state.
func NewValidator(cache *Cache, prober Prober) *Validator {
	return &Validator{cache: cache, prober: prober}
}

// Cache key namespaces. The active and handle checks answer different
// questions about the same string, so they memoize separately.
func activeKey(id string) string { return "active:" + id }
func handleKey(id string) string { return "hdl:" + id }

// DOIWorks reports whether the DOI resolves. Only final outcomes are
// cached; an Indeterminate result keeps retrying on later calls.
func (v *Validator) DOIWorks(ctx context.Context, id string) Outcome {
	id = strings.TrimSpace(id)
	if id == "" {
		return Invalid
	}
	if _, o, ok := v.cache.Lookup(id); ok {
		return o
	}
	if doi.DefinitelyInvalid(id) {
		v.cache.Store(id, "", Invalid)
		return Invalid
	}
	o := v.prober.ProbeDOI(ctx, id)
	v.cache.Store(id, "", o)
	return o
}

// DOIActive is the stricter check: the resolver must redirect and the
// secondary registry must hold metadata for the work.
func (v *Validator) DOIActive(ctx context.Context, id string) Outcome {
	id = strings.TrimSpace(id)
	works := v.DOIWorks(ctx, id)
	if works != Valid {
		return works
	}
	if _, o, ok := v.cache.Lookup(activeKey(id)); ok {
		return o
	}
	o := v.prober.ProbeDOIMetadata(ctx, id)
	v.cache.Store(activeKey(id), "", o)
	return o
}

// HdlWorks reports whether a handle resolves and, when it does, where to.
func (v *Validator) HdlWorks(ctx context.Context, id string) (string, Outcome) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", Invalid
	}
	if loc, o, ok := v.cache.Lookup(handleKey(id)); ok {
		return loc, o
	}
	if doi.DefinitelyInvalid(id) {
		v.cache.Store(handleKey(id), "", Invalid)
		return "", Invalid
	}
	loc, o := v.prober.ProbeHandle(ctx, id)
	v.cache.Store(handleKey(id), loc, o)
	return loc, o
}
