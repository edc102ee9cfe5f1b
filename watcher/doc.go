// Package watcher implements Ed25519 attestation signing and
// verification over canonical JSON payloads (spec.md §3.5), and the
// registered-watcher key set attestations are checked against.
package watcher
