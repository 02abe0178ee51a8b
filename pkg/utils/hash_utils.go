package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 digest of s, or "" for an empty input.
func Hash(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ShortHash returns the first 8 hex characters of Hash. Used for log
// fingerprints and ETags.
func ShortHash(s string) string {
	h := Hash(s)
	if len(h) >= 8 {
		return h[:8]
	}
	return h
}
