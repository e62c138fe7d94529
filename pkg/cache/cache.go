// Package cache provides the render cache used by the preview server.
//
// The serve command re-renders a treebank file on every request; caching the
// finished markup by content hash makes repeated previews of an unchanged
// file free. The Cache interface stays generic so tests can substitute the
// null implementation.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second result reports a cache hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (zero means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKeyOpts are the render settings that participate in the cache key.
// Two requests with the same input but different settings must not collide.
type RenderKeyOpts struct {
	Fields   []string `json:"fields"`
	Meta     []string `json:"meta"`
	Color    string   `json:"color"`
	Snippets bool     `json:"snippets"`
	Format   string   `json:"format"`
}

// RenderKey builds the cache key for a rendered treebank: the content hash
// of the input combined with a hash of the render settings.
func RenderKey(contentHash string, opts RenderKeyOpts) string {
	return hashKey("render:"+contentHash, opts)
}
