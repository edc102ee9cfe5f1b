package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mezcorridor/corridor-core/canon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChain(t *testing.T) (*Chain, string) {
	t.Helper()
	sum := sha256.Sum256([]byte("zone_genesis:pk-sifc"))
	genesis := hex.EncodeToString(sum[:])
	return New(uuid.New(), genesis), genesis
}

func appendReceipt(t *testing.T, c *Chain, seq int, prevRoot string, i int) Receipt {
	t.Helper()
	partial := Receipt{
		Sequence:  seq,
		Timestamp: canon.NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		PrevRoot:  prevRoot,
		LawpackDigestSet: []DigestEntry{
			{Digest: fmt.Sprintf("%064x", i)},
		},
		RulesetDigestSet: []DigestEntry{
			{Digest: fmt.Sprintf("%064x", i+100)},
		},
	}
	sealed, err := c.Seal(partial)
	require.NoError(t, err)
	require.NoError(t, c.Append(sealed))
	return sealed
}

// S1 — full lifecycle append and proof.
func TestFullLifecycleAppendAndProof(t *testing.T) {
	c, genesis := newTestChain(t)

	prev := genesis
	for i := 0; i < 5; i++ {
		r := appendReceipt(t, c, i, prev, i)
		prev = r.NextRoot
	}

	assert.Equal(t, 5, c.Height())

	for i := 0; i < 5; i++ {
		proof, err := c.BuildInclusionProof(i)
		require.NoError(t, err)
		assert.True(t, c.VerifyInclusionProof(proof), "leaf %d should verify", i)
	}

	cp, err := c.CreateCheckpoint()
	require.NoError(t, err)
	assert.Equal(t, 5, cp.Height)
	assert.Equal(t, 5, cp.MMR.Size)
	assert.Equal(t, genesis, cp.GenesisRoot)
}

// S7 — forged next_root rejected.
func TestForgedNextRootRejected(t *testing.T) {
	c, genesis := newTestChain(t)

	forged := Receipt{
		ReceiptType: ReceiptType,
		CorridorID:  c.CorridorID(),
		Sequence:    0,
		PrevRoot:    genesis,
		NextRoot:    "ff00000000000000000000000000000000000000000000000000000000000000"[:64],
	}
	err := c.Append(forged)
	assert.ErrorIs(t, err, ErrNextRootMismatch)
	assert.Equal(t, 0, c.Height())
}

// P-CHAIN-SEAL: sealing the same logical content twice is deterministic.
func TestSealIsDeterministic(t *testing.T) {
	c, genesis := newTestChain(t)
	partial := Receipt{
		Sequence: 0,
		PrevRoot: genesis,
		LawpackDigestSet: []DigestEntry{
			{Digest: fmt.Sprintf("%064x", 1)},
		},
	}
	a, err := c.Seal(partial)
	require.NoError(t, err)
	b, err := c.Seal(partial)
	require.NoError(t, err)
	assert.Equal(t, a.NextRoot, b.NextRoot)
}

// P-CHAIN-LINK: replay (appending the same receipt twice) fails via
// SequenceMismatch since height has advanced.
func TestReplayFailsWithSequenceMismatch(t *testing.T) {
	c, genesis := newTestChain(t)
	r := appendReceipt(t, c, 0, genesis, 0)

	err := c.Append(r)
	assert.ErrorIs(t, err, ErrSequenceMismatch)
	assert.Equal(t, 1, c.Height())
}

func TestAppendRejectsCorridorMismatch(t *testing.T) {
	c, genesis := newTestChain(t)
	partial := Receipt{
		CorridorID: uuid.New(),
		Sequence:   0,
		PrevRoot:   genesis,
	}
	sealed, err := Seal(partial)
	require.NoError(t, err)
	err = c.Append(sealed)
	assert.ErrorIs(t, err, ErrCorridorMismatch)
}

func TestAppendRejectsPrevRootMismatch(t *testing.T) {
	c, _ := newTestChain(t)
	partial := Receipt{
		CorridorID: c.CorridorID(),
		Sequence:   0,
		PrevRoot:   "deadbeef",
	}
	sealed, err := Seal(partial)
	require.NoError(t, err)
	err = c.Append(sealed)
	assert.ErrorIs(t, err, ErrPrevRootMismatch)
}

func TestFinalStateRootHexDefaultsToGenesis(t *testing.T) {
	c, genesis := newTestChain(t)
	assert.Equal(t, genesis, c.FinalStateRootHex())
}
