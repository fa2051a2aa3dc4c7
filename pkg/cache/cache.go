// Package cache provides a simple byte cache used to memoize per-file
// extraction results between scans.
//
// Scanning a large tree re-reads every file; the extracted metadata for
// an unchanged file never changes, so lint and show memoize it keyed by
// path and content hash. Because the content hash is part of the key,
// entries never go stale and carry no expiration. The cache is strictly
// an optimization: a miss or an unreadable entry falls back to
// re-extraction.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// EntryKey builds the cache key for a file's extraction result. The key
// covers both the relative path and the content hash, so edits and
// renames both invalidate.
func EntryKey(relPath string, contentHash string) string {
	return hashKey("entry", relPath, contentHash)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
