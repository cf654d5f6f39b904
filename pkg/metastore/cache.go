package metastore

import "sync"

// ExistenceCache remembers, per series identifier, whether the custom-tags
// document has been observed to exist. It is owned by a Store and lives only
// as long as the process; it is never a source of truth, only a way to skip
// redundant probe requests.
type ExistenceCache struct {
	mu      sync.Mutex
	entries map[string]bool
}

func NewExistenceCache() *ExistenceCache {
	return &ExistenceCache{entries: map[string]bool{}}
}

// Lookup reports the cached existence flag and whether anything is cached
// for this series at all.
func (c *ExistenceCache) Lookup(seriesID string) (exists bool, known bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	exists, known = c.entries[seriesID]
	return exists, known
}

// Set records the outcome of a successful read or write.
func (c *ExistenceCache) Set(seriesID string, exists bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[seriesID] = exists
}

// Invalidate forgets everything cached for a series, forcing the next read
// back through the probe path.
func (c *ExistenceCache) Invalidate(seriesID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, seriesID)
}
