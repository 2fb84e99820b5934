package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// diskCacheSchemaVersion guards against decoding a payload written by an
// older, incompatible CachePayload shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache remembers, by content hash, how many diagnostics a file
// produced the last time it was scanned. A ScanDir run skips re-lexing any
// file whose current content hash is in the cache with zero diagnostics:
// the file hasn't changed since it was last found clean, so it is still
// clean. Files cached with diagnostics are scanned again so their
// diagnostics are reported. Thread-safe for concurrent access from
// ScanDir's worker pool.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the on-disk record for one content hash. It intentionally
// carries no rendered diagnostics, only enough to let a caller decide
// whether a fresh scan is worth running.
type CachePayload struct {
	Schema          uint16
	DiagnosticCount int
}

// OpenDiskCache initializes and returns a disk cache at the standard
// per-user cache location, creating it if necessary.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, "scans", fmt.Sprintf("%x.mp", hash))
}

// lookup reports whether hash has a cached scan result and, if so, returns
// it.
func (c *DiskCache) lookup(hash [32]byte) (CachePayload, bool) {
	if c == nil {
		return CachePayload{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(hash))
	if err != nil {
		return CachePayload{}, false
	}
	defer f.Close()

	var payload CachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return CachePayload{}, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return CachePayload{}, false
	}
	return payload, true
}

// record writes hash's scan result to the cache, replacing any prior entry.
func (c *DiskCache) record(hash [32]byte, diagnosticCount int) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	payload := CachePayload{Schema: diskCacheSchemaVersion, DiagnosticCount: diagnosticCount}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// DropAll invalidates every cached entry, for use after a format change to
// CachePayload or a manual "clear cache" request.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
