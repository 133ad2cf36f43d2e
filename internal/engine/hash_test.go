package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClaim(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeClaim("  Hello   WORLD "))
	assert.Equal(t, "pm kisan pays ₹6000", NormalizeClaim("PM\tKisan\npays ₹6000"))
	assert.Equal(t, "", NormalizeClaim("   "))
}

func TestHashClaimShape(t *testing.T) {
	h := HashClaim("Government announces new scheme")

	assert.Len(t, h, 42)
	assert.Equal(t, "0x", h[:2])
	_, err := hex.DecodeString(h[2:])
	assert.NoError(t, err)
}

func TestHashClaimNormalizationEquivalence(t *testing.T) {
	assert.Equal(t, HashClaim("hello world"), HashClaim("  Hello   WORLD "))
	assert.NotEqual(t, HashClaim("hello world"), HashClaim("hello worlds"))
}

func TestHashClaimMatchesDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("hello world"))
	want := "0x" + hex.EncodeToString(sum[:])[:40]

	assert.Equal(t, want, HashClaim("Hello   World"))
}
