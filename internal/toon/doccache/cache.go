// Package doccache provides an in-memory, content-hash-keyed cache of
// parse results, grounded on the teacher compiler's incremental
// compilation cache: a SHA-256 file hasher plus a mutex-protected
// entry map keyed by that hash, so re-parsing identical source text
// (e.g. on every editor keystroke when only whitespace moved around
// and then moved back) is a map lookup instead of a re-lex/re-parse.
package doccache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/madskristensen/toon/pkg/toon"
)

// Entry is a cached parse result plus cache bookkeeping.
type Entry struct {
	Result   toon.ParseResult
	Hash     string
	CachedAt time.Time
}

// Metrics tracks cache effectiveness, mirroring the teacher's
// CompilationMetrics shape.
type Metrics struct {
	Hits   int
	Misses int
}

// HitRate returns the fraction of lookups that were cache hits, or 0
// if there have been no lookups yet.
func (m Metrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// Cache caches parse results by content hash.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	metrics Metrics
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*Entry)}
}

// HashString computes the SHA-256 hash Cache keys parse results by.
func HashString(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Parse returns the cached ParseResult for source if present;
// otherwise it parses source with opts, caches, and returns the fresh
// result.
func (c *Cache) Parse(source string, opts toon.Options) toon.ParseResult {
	hash := HashString(source)

	c.mu.RLock()
	entry, ok := c.entries[hash]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.metrics.Hits++
		c.mu.Unlock()
		return entry.Result
	}

	result := toon.Parse(source, opts)

	c.mu.Lock()
	c.metrics.Misses++
	c.entries[hash] = &Entry{Result: result, Hash: hash, CachedAt: time.Now()}
	c.mu.Unlock()

	return result
}

// Get retrieves a cached entry by its content hash without parsing.
func (c *Cache) Get(hash string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[hash]
	return entry, ok
}

// Invalidate removes the entry for source's hash, if present.
func (c *Cache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, HashString(source))
}

// Metrics returns a snapshot of cache hit/miss counters.
func (c *Cache) Metrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
