package mock

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sailhq/windfind"
)

var _ windfind.CacheStore = (*CacheStore)(nil)

// CacheStore is an in-memory mock implementation of windfind.CacheStore.
// With nil function fields it behaves as a working cache, which lets
// tests assert on what pipeline stages store and reuse.
type CacheStore struct {
	GetFn func(ctx context.Context, namespace, key string, out any) (bool, error)
	SetFn func(ctx context.Context, namespace, key string, value any) error

	mu      sync.Mutex
	entries map[string][]byte
}

func (s *CacheStore) Get(ctx context.Context, namespace, key string, out any) (bool, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, namespace, key, out)
	}

	s.mu.Lock()
	data, ok := s.entries[namespace+"/"+key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (s *CacheStore) Set(ctx context.Context, namespace, key string, value any) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, namespace, key, value)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.entries == nil {
		s.entries = make(map[string][]byte)
	}
	s.entries[namespace+"/"+key] = data
	s.mu.Unlock()
	return nil
}

// Contains reports whether a value is stored under (namespace, key).
func (s *CacheStore) Contains(namespace, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[namespace+"/"+key]
	return ok
}
