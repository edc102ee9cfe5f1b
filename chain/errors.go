package chain

import "errors"

// Append-time invariant violations (spec.md §4.3). Each is a Conflict
// per the error policy in §7: the input is well-formed, but invalid
// against the chain's current state.
var (
	ErrSequenceMismatch           = errors.New("chain: sequence mismatch")
	ErrPrevRootMismatch           = errors.New("chain: prev_root mismatch")
	ErrNextRootMismatch           = errors.New("chain: next_root mismatch")
	ErrCorridorMismatch           = errors.New("chain: corridor_id mismatch")
	ErrCheckpointSignatureInvalid = errors.New("chain: checkpoint signature verification failed")
	ErrLeafIndexOutOfRange        = errors.New("chain: leaf index out of range")
)
