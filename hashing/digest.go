// Package hashing fingerprints rendered output so two runs can be compared
// byte for byte without keeping both copies around.
//
// Digests are BLAKE2b-256, hex encoded:
//
//	d := hashing.Sum(out)
//	ok, err := hashing.Verify(out, d)
package hashing

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DigestLen is the length of a hex-encoded digest.
const DigestLen = blake2b.Size256 * 2

// Sum returns the hex-encoded BLAKE2b-256 digest of data.
func Sum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether digest is the digest of data.
// The comparison runs in constant time. Returns [ErrInvalidDigest] when digest
// is not a well-formed hex digest.
func Verify(data []byte, digest string) (bool, error) {
	if len(digest) != DigestLen {
		return false, fmt.Errorf("%w: length %d, want %d", ErrInvalidDigest, len(digest), DigestLen)
	}
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	got := blake2b.Sum256(data)
	return subtle.ConstantTimeCompare(got[:], want) == 1, nil
}
