// Package fs provides a file-backed implementation of windfind.CacheStore.
// Each cache entry is one JSON file under <dir>/<namespace>/<key>.json.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sailhq/windfind"
)

// Ensure CacheStore implements windfind.CacheStore at compile time.
var _ windfind.CacheStore = (*CacheStore)(nil)

// CacheStore persists cache entries as pretty-printed JSON files.
// Entries never expire. Writes go through a temp file and a rename so a
// reader never observes a partially written value.
type CacheStore struct {
	dir string
}

// NewCacheStore creates a CacheStore rooted at dir.
func NewCacheStore(dir string) *CacheStore {
	return &CacheStore{dir: dir}
}

func (s *CacheStore) path(namespace, key string) string {
	return filepath.Join(s.dir, namespace, key+".json")
}

// Get loads the value stored under (namespace, key) into out.
// A missing key returns (false, nil).
func (s *CacheStore) Get(ctx context.Context, namespace, key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(namespace, key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, windfind.Errorf(windfind.EINVALID, "corrupt cache entry %s/%s: %s", namespace, key, err)
	}
	return true, nil
}

// Set stores value under (namespace, key), replacing any previous value.
func (s *CacheStore) Set(ctx context.Context, namespace, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Join(s.dir, namespace)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path(namespace, key))
}
