package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeClaim lowercases, trims and collapses internal whitespace so that
// trivially reworded copies of the same claim hash identically.
func NormalizeClaim(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// HashClaim returns the content hash used as the claim identifier: sha256
// over the normalized text, rendered as 0x plus the first 40 hex characters.
func HashClaim(text string) string {
	sum := sha256.Sum256([]byte(NormalizeClaim(text)))
	return "0x" + hex.EncodeToString(sum[:])[:40]
}
