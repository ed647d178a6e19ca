package fileops

import (
	"os"
	"sync"
	"time"
)

// cachedText is file content plus the stat it was read under
type cachedText struct {
	text    string
	modTime time.Time
	size    int64
}

// ContentCache holds definition file contents between scans. An entry is
// served only while the file's modification time and size are unchanged.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]cachedText
}

// NewContentCache creates an empty cache
func NewContentCache() *ContentCache {
	return &ContentCache{entries: make(map[string]cachedText)}
}

// Get returns the cached text of path if the file has not changed since it was stored
func (c *ContentCache) Get(path string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}

	info, err := os.Stat(path)
	if err != nil || !info.ModTime().Equal(entry.modTime) || info.Size() != entry.size {
		c.Invalidate(path)
		return "", false
	}
	return entry.text, true
}

// Put stores text for path. Nothing is stored when path cannot be stat'ed.
func (c *ContentCache) Put(path, text string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = cachedText{text: text, modTime: info.ModTime(), size: info.Size()}
}

// Invalidate drops path from the cache
func (c *ContentCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Clear drops every entry
func (c *ContentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cachedText)
}

// Len returns the number of cached files
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
