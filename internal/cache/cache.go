// Package cache persists fetched test results between invocations. Retrieving every artifact of a large build takes
// multiple round-trips to the API & the storage backend; repeat lookups against the same build should not pay that
// cost twice.
package cache

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spotter-ci/spotter-cli/internal/errors"
)

var sanitizeKeyRegexp = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Cache is a read-through cache of whole test-result sets, keyed by build reference. An entry only ever holds the
// complete result of a successful fetch - there are no partial entries.
type Cache struct {
	CacheConfig
}

// NewCache is the preferred constructor for a Cache. It makes sure that the configuration is valid & necessary
// defaults are applied.
func NewCache(cfg CacheConfig) (Cache, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Cache{}, err
	}

	return Cache{cfg}, nil
}

// Lookup returns the cached documents for a key. A missing, unreadable, or corrupt cache file is a miss, never an
// error - the cache is an optimization, not a source of truth.
func (c Cache) Lookup(key string) ([]string, bool) {
	path := c.path(key)

	file, err := c.FileSystem.Open(path)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	var documents []string
	if err := json.NewDecoder(file).Decode(&documents); err != nil {
		c.Log.Debugf("Discarding corrupt cache file %q: %s", path, err)
		_ = c.FileSystem.Remove(path)
		return nil, false
	}

	return documents, true
}

// Store persists documents for a key, creating the cache directory on demand. The write goes to a temporary file
// first & is moved into place afterwards, so a crash mid-write never leaves a partial entry behind.
func (c Cache) Store(key string, documents []string) error {
	if err := c.FileSystem.MkdirAll(c.Dir); err != nil {
		return errors.NewSystemError("unable to create the cache directory %q: %s", c.Dir, err)
	}

	file, err := c.FileSystem.CreateTemp(c.Dir, "entry-")
	if err != nil {
		return errors.NewSystemError("unable to create a cache file in %q: %s", c.Dir, err)
	}

	if err := json.NewEncoder(file).Encode(documents); err != nil {
		file.Close()
		return errors.NewSystemError("unable to encode the cache entry for %q: %s", key, err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return errors.NewSystemError("unable to flush the cache file %q: %s", file.Name(), err)
	}

	if err := file.Close(); err != nil {
		return errors.NewSystemError("unable to close the cache file %q: %s", file.Name(), err)
	}

	if err := c.FileSystem.Rename(file.Name(), c.path(key)); err != nil {
		return errors.NewSystemError("unable to move the cache file for %q into place: %s", key, err)
	}

	return nil
}

// Fetch is the read-through entry point: a hit is returned directly & the producer never runs; a miss runs the
// producer and persists its result.
func (c Cache) Fetch(key string, producer func() ([]string, error)) ([]string, error) {
	if documents, ok := c.Lookup(key); ok {
		c.Log.Debugf("Using cached test results for %q", key)
		return documents, nil
	}

	return c.produce(key, producer)
}

// Refresh ignores any existing entry but still persists the producer's result, so a run without caching refreshes
// the entry for later cached runs.
func (c Cache) Refresh(key string, producer func() ([]string, error)) ([]string, error) {
	return c.produce(key, producer)
}

func (c Cache) produce(key string, producer func() ([]string, error)) ([]string, error) {
	documents, err := producer()
	if err != nil {
		return nil, err
	}

	if err := c.Store(key, documents); err != nil {
		return nil, err
	}

	return documents, nil
}

// path derives the cache file location for a key. Every rune outside [a-zA-Z0-9] becomes a dash, which keeps the
// file name inspectable while staying safe on any file system.
func (c Cache) path(key string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%s.json", sanitizeKeyRegexp.ReplaceAllString(key, "-")))
}
