package mmr

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mezcorridor/corridor-core/canon"
)

// ErrInvalidHash is returned when a hash value does not decode to a
// well-formed 32-byte hash.
var ErrInvalidHash = errors.New("mmr: invalid hash")

// Hash is a 32-byte SHA-256 hash produced internally by the
// accumulator — a leaf hash or an interior node hash. It is distinct
// from canon.Digest: a Digest commits to the content of some value;
// a Hash commits to a position within the accumulator's own tree
// structure.
type Hash [32]byte

// Hex renders the hash as 64 lowercase hex characters.
func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// ParseHash decodes a 64-character hex string into a Hash. Upper- and
// lower-case hex digits are both accepted.
func ParseHash(s string) (Hash, error) {
	if len(s) != 64 {
		return Hash{}, fmt.Errorf("%w: want 64 hex chars, got %d", ErrInvalidHash, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	var h Hash
	copy(h[:], raw)
	return h, nil
}

func digestToHash(d canon.Digest) Hash {
	return Hash(d)
}

// LeafHash computes the MMR leaf hash for a receipt's next_root
// digest: SHA256(0x00 || next_root).
func LeafHash(nextRoot canon.Digest) Hash {
	var buf [33]byte
	buf[0] = 0x00
	copy(buf[1:], nextRoot[:])
	return sha256.Sum256(buf[:])
}

// NodeHash computes an interior node hash from its two children:
// SHA256(0x01 || left || right).
func NodeHash(left, right Hash) Hash {
	var buf [65]byte
	buf[0] = 0x01
	copy(buf[1:33], left[:])
	copy(buf[33:], right[:])
	return sha256.Sum256(buf[:])
}
