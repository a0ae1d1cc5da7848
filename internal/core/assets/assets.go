// Package assets provides the asset cache read contract and the resolution
// of asset replacement groups against it.
package assets

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Cache.Get when no entry exists for a key.
var ErrNotFound = errors.New("cache entry not found")

// Cache is the read contract for the shared asset cache. Entries are
// immutable byte blobs owned by the cache store; the resolution pipeline
// only ever reads. Population belongs to the downloader collaborator.
type Cache interface {
	// Get returns the cached bytes for a key. Returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
}

// HTMLKey returns the cache key for a message's HTML body.
func HTMLKey(namespace, htmlKey string) string {
	return namespace + "/" + htmlKey
}

// AssetKey returns the cache key for a downloaded remote asset. The
// composite scheme must match the downloader's write side; it is kept in one
// place so the two can be aligned.
func AssetKey(messageID, candidate string) string {
	return messageID + "/" + candidate
}
