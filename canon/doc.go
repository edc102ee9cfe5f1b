// Package canon implements the canonical byte encoding and content
// digest used throughout the corridor core: deterministic JSON with
// sorted object keys, no insignificant whitespace, NFC-normalized
// strings, and integer-only numbers. Every content-addressed value in
// the system — receipts, checkpoints, attestation payloads, zone
// compositions — passes through this package before it is hashed.
package canon
