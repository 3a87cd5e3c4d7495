package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a stable hash for a vulnerability identity key.
// Two findings with the same name and recommendation are the same finding.
func Fingerprint(name, recommendation string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s", name, recommendation)
	return hex.EncodeToString(h.Sum(nil))
}

// ContentKey hashes full source content. Keying on the complete text rather
// than a prefix keeps contracts that share an opening comment or license
// header from aliasing each other.
func ContentKey(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
