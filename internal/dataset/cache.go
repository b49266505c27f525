package dataset

import (
	"sync"

	"contactdesk/domain/table"
	"contactdesk/internal"
	"contactdesk/ports"

	"golang.org/x/sync/singleflight"
)

// Cache is a read-through sheet cache over a workbook source. Sheets are
// loaded lazily on first request, written at most once per name, and never
// evicted: the workbook is assumed static for the lifetime of the process.
// Concurrent first requests for the same sheet are collapsed into a single
// load.
type Cache struct {
	source ports.SheetSource

	mu     sync.RWMutex
	sheets map[string]*table.Table
	group  singleflight.Group
}

// NewCache creates a cache backed by the given source. The cache is
// constructed once in main and passed into the ui layer.
func NewCache(source ports.SheetSource) *Cache {
	return &Cache{
		source: source,
		sheets: make(map[string]*table.Table),
	}
}

// Sheet returns the named sheet, loading it from the source on first
// request. Callers must treat the returned table as read-only; transforms
// clone before mutating.
func (c *Cache) Sheet(name string) (*table.Table, error) {
	c.mu.RLock()
	if t, ok := c.sheets[name]; ok {
		c.mu.RUnlock()
		internal.DefaultLogger.Debug("[dataset.Cache] Cache hit for sheet %s", name)
		return t, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(name, func() (interface{}, error) {
		// Re-check under the group: a prior flight may have populated it.
		c.mu.RLock()
		if t, ok := c.sheets[name]; ok {
			c.mu.RUnlock()
			return t, nil
		}
		c.mu.RUnlock()

		t, err := c.source.ReadSheet(name)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.sheets[name] = t
		c.mu.Unlock()

		internal.DefaultLogger.Info("[dataset.Cache] Cached sheet %s (%d rows, %d columns)", name, len(t.Rows), len(t.Headers))
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table.Table), nil
}

// SheetNames lists the sheets available from the source.
func (c *Cache) SheetNames() ([]string, error) {
	return c.source.SheetNames()
}
