package openjobs

import (
	"sync/atomic"

	"apptrack-engine/internal/domain"
)

// Cache holds the latest ingested posting list. Replace swaps the whole
// slice atomically, so readers see either the old list or the fully new one,
// never a partial refresh.
type Cache struct {
	v atomic.Value // stores []domain.JobRecord
}

func NewCache() *Cache {
	c := &Cache{}
	c.v.Store([]domain.JobRecord(nil))
	return c
}

// Get returns a copy of the cached list; callers may not mutate shared state.
func (c *Cache) Get() []domain.JobRecord {
	list, _ := c.v.Load().([]domain.JobRecord)
	out := make([]domain.JobRecord, len(list))
	copy(out, list)
	return out
}

func (c *Cache) Replace(list []domain.JobRecord) {
	c.v.Store(list)
}

func (c *Cache) Len() int {
	list, _ := c.v.Load().([]domain.JobRecord)
	return len(list)
}
