package suggest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nightlyone/lockfile"

	"github.com/handleui/refract/diag"
)

// lockFileName guards the cache directory against concurrent writers
// (parallel builds suggesting for the same project share one cache).
const lockFileName = "suggest.lock"

// Cache is an on-disk suggestion cache: one file per diagnostic key.
// Reads are lock-free; writes take a directory lockfile.
type Cache struct {
	dir string
}

// NewCache opens (creating if needed) a cache rooted at dir.
func NewCache(dir string) (*Cache, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving cache directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: abs}, nil
}

// CacheKey derives the cache key for a diagnostic: a content hash of its
// code, message, and the source excerpt the prompt would include. Two
// diagnostics producing the same prompt share a suggestion.
func CacheKey(d diag.Diagnostic, source string) string {
	h := sha256.New()
	h.Write([]byte(d.Code))
	h.Write([]byte{0})
	h.Write([]byte(d.Message))
	h.Write([]byte{0})
	h.Write([]byte(sourceExcerpt(d.Pos, source)))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached suggestion for key, if any.
func (c *Cache) Get(key string) (string, bool) {
	if !validKey(key) {
		return "", false
	}
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Put stores a suggestion under key. The write is guarded by a lockfile;
// when another process holds the lock the write is skipped and an error is
// returned, which callers may ignore (the cache is an optimization).
func (c *Cache) Put(key, text string) error {
	if !validKey(key) {
		return fmt.Errorf("invalid cache key %q", key)
	}

	lock, err := lockfile.New(filepath.Join(c.dir, lockFileName))
	if err != nil {
		return fmt.Errorf("creating cache lock: %w", err)
	}

	switch tryErr := lock.TryLock(); {
	case tryErr == nil:
		// Lock acquired.
	case errors.Is(tryErr, lockfile.ErrBusy):
		return fmt.Errorf("suggestion cache busy: %w", tryErr)
	case errors.Is(tryErr, lockfile.ErrDeadOwner), errors.Is(tryErr, lockfile.ErrInvalidPid):
		// Stale lock from a dead process; the library cleaned it up, retry once.
		if retryErr := lock.TryLock(); retryErr != nil {
			return fmt.Errorf("acquiring cache lock after stale owner: %w", retryErr)
		}
	default:
		return fmt.Errorf("acquiring cache lock: %w", tryErr)
	}
	defer func() { _ = lock.Unlock() }()

	// Write-then-rename keeps readers from observing partial entries.
	tmp, err := os.CreateTemp(c.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating cache entry: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing cache entry: %w", err)
	}
	if err := os.Rename(tmpPath, c.entryPath(key)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, key+".txt")
}

// validKey accepts only the lowercase-hex keys CacheKey produces, which
// keeps arbitrary strings from turning into path traversal.
func validKey(key string) bool {
	if len(key) != sha256.Size*2 {
		return false
	}
	for _, r := range key {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
