// cache.go provides an in-memory cache for compiled page templates.
// This is the L1 cache — it avoids re-parsing the embedded template
// sources on every render. The L2 cache (compiled CSS and rendered
// preview HTML in Valkey) lives in internal/cache and is only consulted
// by the HTTP layer.
package renderer

import (
	"html/template"
	"log/slog"
	"sync"
)

// templateCache is a concurrency-safe cache of compiled page templates
// keyed by template id.
type templateCache struct {
	mu      sync.RWMutex
	entries map[string]*template.Template
}

// newTemplateCache creates an empty template cache.
func newTemplateCache() *templateCache {
	return &templateCache{entries: make(map[string]*template.Template)}
}

// get retrieves a compiled template. Returns nil on miss.
func (c *templateCache) get(id string) *template.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[id]
}

// put stores a compiled template.
func (c *templateCache) put(id string, tmpl *template.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = tmpl
	slog.Debug("page template cached", "id", id, "size", len(c.entries))
}

// invalidate removes one template. Called when a host re-registers a
// template schema and its markup together.
func (c *templateCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	slog.Debug("page template cache invalidated", "id", id)
}

// len reports the number of cached templates.
func (c *templateCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// invalidateAll clears the cache.
func (c *templateCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*template.Template)
	slog.Debug("page template cache fully cleared")
}
