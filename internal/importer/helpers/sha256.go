package helpers

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// ImportHash returns the hash used to detect an entry that was imported before.
// The parts are joined with a separator that does not occur in bank data.
func ImportHash(parts ...string) string {
	return Sha256String(strings.Join(parts, "\x1f"))
}
