package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidDigest is returned when a hex string does not decode to a
// well-formed 32-byte content digest.
var ErrInvalidDigest = errors.New("canon: invalid content digest")

// Digest is a 32-byte SHA-256 content digest. It is never constructed
// from arbitrary bytes outside this package — callers obtain one via
// Sha256Digest over canonical bytes, or parse one received over the
// wire with ParseDigest.
type Digest [32]byte

// Hex renders the digest as 64 lowercase hex characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer.
func (d Digest) String() string {
	return d.Hex()
}

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// ParseDigest decodes a 64-lowercase-hex string into a Digest. Unlike
// Sha256Digest, this does not derive the digest from canonical bytes —
// it is for accepting digests that arrived over the wire (e.g. a
// prev_root or a lawpack digest reference) and must still be validated
// for shape before use.
func ParseDigest(s string) (Digest, error) {
	if len(s) != 64 {
		return Digest{}, fmt.Errorf("%w: want 64 hex chars, got %d", ErrInvalidDigest, len(s))
	}
	for _, c := range s {
		isLowerHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		if !isLowerHex {
			return Digest{}, fmt.Errorf("%w: non-lowercase-hex character %q", ErrInvalidDigest, c)
		}
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	var d Digest
	copy(d[:], raw)
	return d, nil
}

// Sha256Digest computes the SHA-256 digest of already-canonical bytes.
func Sha256Digest(b []byte) Digest {
	return sha256.Sum256(b)
}

// DigestValue canonicalizes v and returns its content digest. This is
// the standard path: CanonicalBytes -> ContentDigest used everywhere a
// receipt, checkpoint, attestation payload, or zone composition commits
// to its own content.
func DigestValue(v any) (Digest, error) {
	b, err := Canonicalize(v)
	if err != nil {
		return Digest{}, err
	}
	return Sha256Digest(b), nil
}
