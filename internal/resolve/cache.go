package resolve

// Default cache bounds. Eviction is wholesale: when a map crosses its
// limit it is cleared entirely rather than trimmed entry-by-entry, which
// keeps lookups insertion-order independent and the memory cap hard.
const (
	DefaultGoodLimit = 100000
	DefaultBadLimit  = 2500
)

// Cache memoizes identifier resolution for the life of the process. Known
// good identifiers keep their resolved location (empty for DOIs, the target
// URL for handles); known bad ones are a plain set. There is no
// synchronization: the design assumes a single logical worker, matching the
// sequential validation flow. Nothing is persisted.
type Cache struct {
	good      map[string]string
	bad       map[string]struct{}
	goodLimit int
	badLimit  int
}

// NewCache returns a cache with the default bounds.
func NewCache() *Cache {
	return NewCacheWithLimits(DefaultGoodLimit, DefaultBadLimit)
}

// NewCacheWithLimits returns a cache with explicit bounds, for tests and
// memory-constrained deployments.
func NewCacheWithLimits(goodLimit, badLimit int) *Cache {
	return &Cache{
		good:      make(map[string]string),
		bad:       make(map[string]struct{}),
		goodLimit: goodLimit,
		badLimit:  badLimit,
	}
}

// Lookup returns the memoized outcome for an identifier, with the resolved
// location for known-good handles. ok is false on a miss.
func (c *Cache) Lookup(id string) (location string, o Outcome, ok bool) {
	if loc, hit := c.good[id]; hit {
		return loc, Valid, true
	}
	if _, hit := c.bad[id]; hit {
		return "", Invalid, true
	}
	return "", Indeterminate, false
}

// Store memoizes a final outcome. Indeterminate is dropped on the floor so
// a later call retries the probe. Crossing a size limit clears that side
// wholesale before the insert.
func (c *Cache) Store(id, location string, o Outcome) {
	switch o {
	case Valid:
		if len(c.good) >= c.goodLimit {
			c.good = make(map[string]string)
		}
		c.good[id] = location
	case Invalid:
		if len(c.bad) >= c.badLimit {
			c.bad = make(map[string]struct{})
		}
		c.bad[id] = struct{}{}
	}
}

// Len returns the current number of known-good and known-bad entries.
func (c *Cache) Len() (good, bad int) {
	return len(c.good), len(c.bad)
}
