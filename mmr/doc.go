// Package mmr implements the corridor receipt chain's Merkle Mountain
// Range accumulator: an append-only, peak-based commitment scheme that
// supports compact inclusion proofs without requiring disclosure of
// the full receipt set.
//
// The accumulator only ever ingests leaves that are already content
// digests produced by package canon — it never hashes arbitrary bytes
// on its own behalf. Domain separation between leaves and interior
// nodes follows a fixed one-byte prefix (0x00 for leaves, 0x01 for
// nodes) rather than position salting, so that peaks computed from a
// checkpoint can be extended incrementally without replaying the
// chain from index zero.
package mmr
