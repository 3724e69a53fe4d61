package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hashing.Verify(out, digest)
//	if errors.Is(err, hashing.ErrInvalidDigest) {
//	    // digest string is malformed
//	}
var (
	// ErrInvalidDigest is returned when a digest string has the wrong length
	// or is not valid hex.
	ErrInvalidDigest = errors.New("hashing: invalid digest string")
)
