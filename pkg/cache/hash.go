package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key builds a cache key from a prefix and arbitrary render parameters.
// Every part feeds the hash with a separator, so ("a", "bc") and
// ("ab", "c") produce different keys.
func Key(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%v\x00", p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the SHA-256 of data as a 64-character hex string.
// The preview server hashes the dataset file with it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
