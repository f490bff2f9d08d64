// Package resolve validates DOIs and handles against the live resolver
// infrastructure: a syntax pre-filter avoids impossible probes, a bounded
// in-memory cache avoids repeat probes, and a throttled HTTP prober does the
// rest. Network ambiguity is a value, not an error.
package resolve

// Outcome is the tri-state result of an identifier check. Indeterminate
// means the probe could not confirm either way (transport failure or an
// ambiguous response); callers must treat it as "retry later", never as a
// final negative, and it is never cached.
type Outcome int

const (
	Indeterminate Outcome = iota
	Valid
	Invalid
)

// Known reports whether the outcome is final and therefore cacheable.
func (o Outcome) Known() bool {
	return o != Indeterminate
}

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// MarshalJSON encodes the outcome as its string form.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}
