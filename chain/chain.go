package chain

import (
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mezcorridor/corridor-core/canon"
	"github.com/mezcorridor/corridor-core/corridorlog"
	"github.com/mezcorridor/corridor-core/mmr"
)

// Chain is a single corridor's append-only receipt chain: an ordered
// sequence of sealed receipts, the MMR accumulating their next_root
// values, and the checkpoints committed over its history. A Chain
// exclusively owns its receipts, MMR, and checkpoints — see §5.
type Chain struct {
	mu sync.Mutex

	corridorID  uuid.UUID
	genesisRoot string
	opts        chainOptions

	receipts    []Receipt
	accumulator *mmr.MerkleMountainRange
	checkpoints []Checkpoint
}

// New constructs a Chain for corridorID rooted at genesisRoot (a
// 64-hex digest supplied by the caller, distinct per corridor).
func New(corridorID uuid.UUID, genesisRoot string, options ...Option) *Chain {
	var o chainOptions
	for _, opt := range options {
		opt(&o)
	}
	return &Chain{
		corridorID:  corridorID,
		genesisRoot: genesisRoot,
		opts:        o,
		accumulator: mmr.New(),
	}
}

// CorridorID returns the chain's corridor identifier.
func (c *Chain) CorridorID() uuid.UUID {
	return c.corridorID
}

// GenesisRoot returns the chain's genesis root hex digest.
func (c *Chain) GenesisRoot() string {
	return c.genesisRoot
}

// Height returns the number of receipts appended so far.
func (c *Chain) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.receipts)
}

// FinalStateRootHex returns receipts[-1].next_root if the chain is
// non-empty, else the genesis root (§3.3).
func (c *Chain) FinalStateRootHex() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finalStateRootLocked()
}

func (c *Chain) finalStateRootLocked() string {
	if len(c.receipts) == 0 {
		return c.genesisRoot
	}
	return c.receipts[len(c.receipts)-1].NextRoot
}

// Seal computes next_root on a partial receipt from
// H(canonical(receipt-with-next_root-empty)), per §4.3. It does not
// set sequence or prev_root — callers populate those from the chain's
// current state (Height and FinalStateRootHex) before sealing, or let
// Append report the mismatch if they guessed wrong.
func (c *Chain) Seal(partial Receipt) (Receipt, error) {
	partial.CorridorID = c.corridorID
	return Seal(partial)
}

// Append validates receipt against all four append invariants and, on
// success, atomically commits it: pushes the receipt and appends its
// next_root to the MMR in one critical section (§4.3's "Algorithm
// (append)"). Supplying the same receipt twice fails with
// ErrSequenceMismatch, since height has already advanced — this is
// the chain's replay guarantee under network retransmission.
func (c *Chain) Append(receipt Receipt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if receipt.CorridorID != c.corridorID {
		corridorlog.Sugar.Debugf("chain.append: corridor mismatch chain=%s receipt=%s", c.corridorID, receipt.CorridorID)
		return fmt.Errorf("%w: chain=%s receipt=%s", ErrCorridorMismatch, c.corridorID, receipt.CorridorID)
	}
	expectedSeq := len(c.receipts)
	if receipt.Sequence != expectedSeq {
		corridorlog.Sugar.Debugf("chain.append: sequence mismatch expected=%d got=%d", expectedSeq, receipt.Sequence)
		return fmt.Errorf("%w: expected=%d got=%d", ErrSequenceMismatch, expectedSeq, receipt.Sequence)
	}
	expectedPrev := c.finalStateRootLocked()
	if receipt.PrevRoot != expectedPrev {
		corridorlog.Sugar.Debugf("chain.append: prev_root mismatch expected=%s got=%s", expectedPrev, receipt.PrevRoot)
		return fmt.Errorf("%w: expected=%s got=%s", ErrPrevRootMismatch, expectedPrev, receipt.PrevRoot)
	}
	expectedNext, err := computeNextRoot(receipt)
	if err != nil {
		return err
	}
	if receipt.NextRoot != expectedNext {
		corridorlog.Sugar.Debugf("chain.append: next_root mismatch expected=%s got=%s", expectedNext, receipt.NextRoot)
		return fmt.Errorf("%w: expected=%s got=%s", ErrNextRootMismatch, expectedNext, receipt.NextRoot)
	}

	nextRootDigest, err := canon.ParseDigest(receipt.NextRoot)
	if err != nil {
		return fmt.Errorf("chain: next_root not a valid digest: %w", err)
	}

	c.receipts = append(c.receipts, receipt)
	c.accumulator.Append(nextRootDigest)
	corridorlog.Sugar.Debugf("chain.append: corridor=%s sequence=%d height=%d", c.corridorID, receipt.Sequence, len(c.receipts))
	return nil
}

// BuildInclusionProof builds an inclusion proof for the receipt at
// leaf index i.
func (c *Chain) BuildInclusionProof(i int) (mmr.InclusionProof, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.receipts) {
		return mmr.InclusionProof{}, fmt.Errorf("%w: index=%d height=%d", ErrLeafIndexOutOfRange, i, len(c.receipts))
	}
	return c.accumulator.InclusionProof(i)
}

// VerifyInclusionProof verifies a proof produced by BuildInclusionProof
// (or by any compatible MMR over the same leaf set).
func (c *Chain) VerifyInclusionProof(proof mmr.InclusionProof) bool {
	return mmr.VerifyInclusionProof(proof)
}

// MMRRoot returns the chain's current bagged MMR root as hex.
func (c *Chain) MMRRoot() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	root, err := c.accumulator.Root()
	if err != nil {
		return "", err
	}
	return root.Hex(), nil
}

// CreateCheckpoint produces a Checkpoint committing to the chain's
// current state (§3.4).
func (c *Chain) CreateCheckpoint() (Checkpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	root, err := c.accumulator.Root()
	if err != nil {
		return Checkpoint{}, err
	}
	cp, err := newCheckpoint(c.genesisRoot, c.finalStateRootLocked(), len(c.receipts), c.accumulator.Size(), root.Hex())
	if err != nil {
		return Checkpoint{}, err
	}
	c.checkpoints = append(c.checkpoints, cp)
	return cp, nil
}

// Checkpoints returns a copy of the chain's committed checkpoints.
func (c *Chain) Checkpoints() []Checkpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Checkpoint, len(c.checkpoints))
	copy(out, c.checkpoints)
	return out
}

// SignCheckpoint produces a COSE_Sign1 commitment over cp's state
// using key, labeled with the chain's configured root signer issuer
// (WithRootSignerIssuer). It is an optional decoration on top of
// cp.CheckpointDigest — see RootSigner.
func (c *Chain) SignCheckpoint(key ed25519.PrivateKey, cp Checkpoint) ([]byte, error) {
	c.mu.Lock()
	issuer := c.opts.rootSignerIssuer
	c.mu.Unlock()

	genesisRoot, err := canon.ParseDigest(cp.GenesisRoot)
	if err != nil {
		return nil, fmt.Errorf("chain: checkpoint genesis_root: %w", err)
	}
	finalStateRoot, err := canon.ParseDigest(cp.FinalStateRoot)
	if err != nil {
		return nil, fmt.Errorf("chain: checkpoint final_state_root: %w", err)
	}
	mmrRoot, err := canon.ParseDigest(cp.MMR.Root)
	if err != nil {
		return nil, fmt.Errorf("chain: checkpoint mmr root: %w", err)
	}

	state := CheckpointState{
		GenesisRoot:    genesisRoot[:],
		FinalStateRoot: finalStateRoot[:],
		ReceiptCount:   uint64(cp.ReceiptCount),
		MMRSize:        uint64(cp.MMR.Size),
		MMRRoot:        mmrRoot[:],
		Timestamp:      time.Now().UTC().Unix(),
	}
	return NewRootSigner(issuer).Sign1(key, state)
}
