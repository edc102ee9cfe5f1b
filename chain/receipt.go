package chain

import (
	"github.com/google/uuid"
	"github.com/mezcorridor/corridor-core/canon"
)

// ReceiptType is the literal tag every corridor state receipt carries.
const ReceiptType = "MEZCorridorStateReceipt"

// DigestEntry is a lawpack/ruleset digest set member. It is polymorphic
// per spec.md §9.1: a bare RawDigest or a typed ArtifactRef. The core
// treats both identically for commitment purposes — URI is a hint,
// never authoritative.
type DigestEntry struct {
	Digest       string `json:"digest"`
	ArtifactType string `json:"artifact_type,omitempty"`
	URI          string `json:"uri,omitempty"`
}

// Proof is an optional signature object attached to a receipt. It may
// carry one signature or several (e.g. multi-party attestation of the
// same transition).
type Proof struct {
	Signatures []string `json:"signatures"`
}

// Receipt is an immutable record of one corridor state transition.
// Receipts are sealed (next_root computed) before they are appended,
// and are never mutated after appending — see Chain.Append.
type Receipt struct {
	ReceiptType                        string          `json:"receipt_type"`
	CorridorID                         uuid.UUID       `json:"corridor_id"`
	Sequence                           int             `json:"sequence"`
	Timestamp                          canon.Timestamp `json:"timestamp"`
	PrevRoot                           string        `json:"prev_root"`
	NextRoot                           string        `json:"next_root"`
	LawpackDigestSet                   []DigestEntry `json:"lawpack_digest_set"`
	RulesetDigestSet                   []DigestEntry `json:"ruleset_digest_set"`
	Proof                              *Proof        `json:"proof,omitempty"`
	Transition                         any           `json:"transition,omitempty"`
	TransitionTypeRegistryDigestSHA256 string        `json:"transition_type_registry_digest_sha256,omitempty"`
	ZK                                 []byte        `json:"zk,omitempty"`
	Anchor                             *Anchor       `json:"anchor,omitempty"`
}

// Anchor is an external anchor descriptor (e.g. a reference into a
// third-party ledger or timestamping service). Its content is opaque
// to the core; its kind and reference are committed in the receipt's
// canonical bytes, and so in its next_root, like any other field.
type Anchor struct {
	Kind      string `json:"kind"`
	Reference string `json:"reference"`
}

// computeNextRoot computes next_root for a receipt whose next_root
// field is not yet set (or is being recomputed for verification).
func computeNextRoot(r Receipt) (string, error) {
	rc := r
	rc.NextRoot = ""
	d, err := canon.DigestValue(rc)
	if err != nil {
		return "", err
	}
	return d.Hex(), nil
}

// Seal computes and sets r.NextRoot from the receipt's own content,
// per spec.md §4.3. The receipt's sequence, prev_root, and all other
// fields must already be set — Seal only derives next_root.
func Seal(r Receipt) (Receipt, error) {
	r.ReceiptType = ReceiptType
	nextRoot, err := computeNextRoot(r)
	if err != nil {
		return Receipt{}, err
	}
	r.NextRoot = nextRoot
	return r, nil
}
