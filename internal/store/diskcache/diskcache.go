// Package diskcache provides a file-backed asset cache.
package diskcache

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/placardhq/placard/internal/core/assets"
)

const blobExt = ".blob"

// Cache stores asset blobs as files under a root directory, one file per
// key. It implements the assets.Cache read contract; Put is the write side
// used by the downloader collaborator and the CLI.
//
// Cache keys may contain arbitrary URL characters, so file names are the
// base64url encoding of the key rather than the key itself.
type Cache struct {
	root string
	mu   sync.RWMutex
}

// New creates a cache rooted at the given directory.
func New(root string) *Cache {
	return &Cache{root: root}
}

// keyPath maps a cache key to its file path.
func (c *Cache) keyPath(key string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(key))
	return filepath.Join(c.root, name+blobExt)
}

// Get returns the cached bytes for a key. Returns assets.ErrNotFound on a miss.
func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, assets.ErrNotFound
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}

	return data, nil
}

// Put stores bytes under a key, replacing any existing entry. The write is
// atomic: entries are never observable half-written.
func (c *Cache) Put(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	path := c.keyPath(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// List returns all cache keys, sorted.
func (c *Cache) List(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache directory: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), blobExt) {
			continue
		}

		raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(entry.Name(), blobExt))
		if err != nil {
			// Foreign file in the cache directory
			continue
		}
		keys = append(keys, string(raw))
	}

	sort.Strings(keys)
	return keys, nil
}
