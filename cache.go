package windfind

import (
	"context"
	"strings"
)

// Cache namespaces, one per logical tool.
const (
	CacheNamespaceSearch   = "search"
	CacheNamespaceDomains  = "domains"
	CacheNamespaceSubpages = "subpages"
	CacheNamespaceContent  = "content"
)

// maxCacheKeyLen bounds sanitized keys so they stay usable as file names.
const maxCacheKeyLen = 120

// CacheStore is namespaced key/value persistence. Every stage consults
// it before calling an external provider and writes through after a
// successful call. Values must be JSON-serializable.
type CacheStore interface {
	// Get loads the value stored under (namespace, key) into out.
	// A missing key returns (false, nil), never an error.
	Get(ctx context.Context, namespace, key string, out any) (bool, error)

	// Set stores value under (namespace, key), replacing any previous
	// value. The write either fully succeeds or leaves the old state.
	Set(ctx context.Context, namespace, key string, value any) error
}

// CacheKey derives a storage key from semantically meaningful input by
// stripping non-alphanumeric characters, truncating, and lowercasing.
//
// Two distinct inputs that sanitize to the same key are treated as
// identical. Cached data in the wild depends on this keying scheme,
// collisions included; changing it invalidates every existing cache.
func CacheKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	key := b.String()
	if len(key) > maxCacheKeyLen {
		key = key[:maxCacheKeyLen]
	}
	return strings.ToLower(key)
}

// Truncate returns at most n leading bytes of s. Subpage cache keys use
// only the first few characters of a page title.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
