package hashutil

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// GenerateID creates a 7-character hex ID from a habit name and its creation time.
func GenerateID(name string, at time.Time) string {
	return GenerateIDFromSeed(fmt.Sprintf("%s\x00%d", name, at.UnixNano()))
}

// UniqueID returns an ID for name that taken reports as unused. Colliding
// seeds are salted with an increasing counter until a free ID is found.
func UniqueID(name string, at time.Time, taken func(id string) bool) string {
	id := GenerateID(name, at)
	for salt := 1; taken(id); salt++ {
		id = GenerateIDFromSeed(fmt.Sprintf("%s\x00%d\x00%d", name, at.UnixNano(), salt))
	}
	return id
}

// GenerateIDFromSeed creates a deterministic 7-character hex ID from a seed string.
func GenerateIDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
