// Package cache provides the process-lifetime version cache shared by all
// analyzers in a run, with optional JSON snapshot persistence between runs.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logger "github.com/sirupsen/logrus"
)

// Memory is an in-memory version cache safe for concurrent use. Keys are
// flat "<environment>:<package>" strings so a snapshot round-trips as a
// plain JSON object.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Load reads a cache snapshot from path. A missing or corrupt snapshot is
// not an error: the run degrades to an empty cache with a warning.
func Load(path string) *Memory {
	c := NewMemory()
	if path == "" {
		return c
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("Failed to read cache snapshot %q: %v (starting with empty cache)", path, err)
		}
		return c
	}

	if unmarshalErr := json.Unmarshal(data, &c.entries); unmarshalErr != nil {
		logger.Warnf("Corrupt cache snapshot %q: %v (starting with empty cache)", path, unmarshalErr)
		c.entries = make(map[string]string)
		return c
	}

	logger.Debugf("Loaded %d cached versions from %q", len(c.entries), path)
	return c
}

// Get returns the cached latest version for (environment, pkg).
func (c *Memory) Get(environment, pkg string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	version, ok := c.entries[cacheKey(environment, pkg)]
	return version, ok
}

// Set stores the latest version for (environment, pkg), overwriting any
// previous value. Registry values are idempotent per package, so concurrent
// writes to the same key resolve as last-write-wins.
func (c *Memory) Set(environment, pkg, version string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(environment, pkg)] = version
}

// Len returns the number of cached entries.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Save writes the cache as an indented JSON snapshot to path, creating
// parent directories as needed.
func (c *Memory) Save(path string) error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode cache snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0o755); mkdirErr != nil {
			return fmt.Errorf("failed to create cache directory: %w", mkdirErr)
		}
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write cache snapshot %q: %w", path, writeErr)
	}
	return nil
}

func cacheKey(environment, pkg string) string {
	return environment + ":" + pkg
}
