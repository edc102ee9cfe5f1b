package watcher

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/mezcorridor/corridor-core/canon"
)

// Attestation is a watcher's signed claim about a branch's next_root
// at a given height, rooted at parent_root (§3.5). Timestamp uses
// canon.Timestamp, not time.Time, so the signed payload always
// serializes at the second precision spec.md §3.1/§9.4 requires —
// RFC3339Nano byte differences would otherwise break cross-implementation
// signature verification.
type Attestation struct {
	WatcherKeyHex string         `json:"watcher_key_hex"`
	ParentRoot    string         `json:"parent_root"`
	CandidateRoot string         `json:"candidate_root"`
	Height        int            `json:"height"`
	Timestamp     canon.Timestamp `json:"timestamp"`
	Signature     string         `json:"signature,omitempty"`
}

// signingPayload returns the canonicalization-ready view of a with its
// signature field cleared, per §3.5: "signature(Ed25519 over
// canonical(everything-but-signature))".
func (a Attestation) signingPayload() Attestation {
	a.Signature = ""
	return a
}

// Sign signs a with key and returns a copy with Signature populated.
// It does not check key against a.WatcherKeyHex; a verifier binds that
// label to a public key through the Registry.
func Sign(key ed25519.PrivateKey, a Attestation) (Attestation, error) {
	payload := a.signingPayload()
	msg, err := canon.Canonicalize(payload)
	if err != nil {
		return Attestation{}, fmt.Errorf("watcher: canonicalizing attestation: %w", err)
	}
	sig := ed25519.Sign(key, msg)
	a.Signature = hex.EncodeToString(sig)
	return a, nil
}

// Verify checks a's signature against publicKey. It does not consult
// the watcher registry — callers check registration separately (see
// Registry.Lookup) before counting a verified attestation.
func Verify(publicKey ed25519.PublicKey, a Attestation) bool {
	sigBytes, err := hex.DecodeString(a.Signature)
	if err != nil || len(sigBytes) != ed25519.SignatureSize {
		return false
	}
	payload := a.signingPayload()
	msg, err := canon.Canonicalize(payload)
	if err != nil {
		return false
	}
	return ed25519.Verify(publicKey, msg, sigBytes)
}
