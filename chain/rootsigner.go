package chain

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// CheckpointState is the CBOR-encoded payload a RootSigner commits to:
// enough of a checkpoint's state to let a verifier, given only this
// signed blob and the corridor's genesis root, confirm that a claimed
// MMR size and root were once attested by the signer.
type CheckpointState struct {
	GenesisRoot    []byte `cbor:"1,keyasint"`
	FinalStateRoot []byte `cbor:"2,keyasint"`
	ReceiptCount   uint64 `cbor:"3,keyasint"`
	MMRSize        uint64 `cbor:"4,keyasint"`
	MMRRoot        []byte `cbor:"5,keyasint"`
	Timestamp      int64  `cbor:"6,keyasint"`
}

// RootSigner produces a COSE_Sign1 commitment over a checkpoint's
// state. The signature is optional decoration on top of the
// checkpoint's own content digest (§3.4) — the digest alone is
// sufficient for P-CANON/P-CHAIN properties; the signature lets a
// third party attest "I witnessed this checkpoint" without trusting
// the corridor operator's clock.
type RootSigner struct {
	issuer string
}

// NewRootSigner returns a RootSigner that labels its signatures with
// the given issuer identifier.
func NewRootSigner(issuer string) RootSigner {
	return RootSigner{issuer: issuer}
}

// Sign1 signs state with key, returning the encoded COSE_Sign1 message.
func (rs RootSigner) Sign1(key ed25519.PrivateKey, state CheckpointState) ([]byte, error) {
	payload, err := cbor.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("chain: encoding checkpoint state: %w", err)
	}

	signer, err := cose.NewSigner(cose.AlgorithmEdDSA, key)
	if err != nil {
		return nil, fmt.Errorf("chain: constructing cose signer: %w", err)
	}

	msg := cose.NewSign1Message()
	msg.Headers.Protected.SetAlgorithm(cose.AlgorithmEdDSA)
	msg.Headers.Unprotected[cose.HeaderLabelKeyID] = []byte(rs.issuer)
	msg.Payload = payload

	if err := msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, fmt.Errorf("chain: signing checkpoint: %w", err)
	}
	return msg.MarshalCBOR()
}

// VerifySign1 verifies a COSE_Sign1 checkpoint commitment against the
// given Ed25519 public key and returns the decoded state.
func VerifySign1(publicKey ed25519.PublicKey, encoded []byte) (CheckpointState, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(encoded); err != nil {
		return CheckpointState{}, fmt.Errorf("chain: decoding cose message: %w", err)
	}

	verifier, err := cose.NewVerifier(cose.AlgorithmEdDSA, publicKey)
	if err != nil {
		return CheckpointState{}, fmt.Errorf("chain: constructing cose verifier: %w", err)
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return CheckpointState{}, fmt.Errorf("chain: %w: %w", ErrCheckpointSignatureInvalid, err)
	}

	var state CheckpointState
	if err := cbor.Unmarshal(msg.Payload, &state); err != nil {
		return CheckpointState{}, fmt.Errorf("chain: decoding checkpoint state: %w", err)
	}
	return state, nil
}
