package feed

import (
	"sync"
	"time"
)

// ResultCache holds the latest pipeline result and its rendered HTML for
// the HTTP handlers. Writers are the refresh task, readers the API.
type ResultCache struct {
	mu          sync.RWMutex
	result      RunResult
	html        string
	newCount    int
	refreshedAt time.Time
	ready       bool
}

func NewResultCache() *ResultCache {
	return &ResultCache{}
}

func (c *ResultCache) Set(result RunResult, html string, newCount int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = result
	c.html = html
	c.newCount = newCount
	c.refreshedAt = time.Now()
	c.ready = true
}

// Get returns the latest result and HTML. ok is false until the first
// refresh completes.
func (c *ResultCache) Get() (RunResult, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.html, c.ready
}

func (c *ResultCache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

// NewItemCount reports how many items of the latest run were first-time
// sightings according to the seen store.
func (c *ResultCache) NewItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.newCount
}
