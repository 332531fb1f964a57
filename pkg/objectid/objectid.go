package objectid

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Record identifiers are 24-character hex strings (12 random bytes).
// Handlers validate path/body identifiers with IsValid before any repository call.

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New generates a new 24-character hex identifier.
func New() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}

// IsValid reports whether s is a well-formed 24-character hex identifier.
func IsValid(s string) bool {
	return idPattern.MatchString(s)
}
