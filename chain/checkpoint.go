package chain

import "github.com/mezcorridor/corridor-core/canon"

// CheckpointType is the literal tag carried by every checkpoint.
const CheckpointType = "MEZCorridorStateCheckpoint"

// MMRCheckpointSummary is the mmr sub-object of a Checkpoint (§3.4).
type MMRCheckpointSummary struct {
	MMRType   string `json:"mmr_type"`
	Algorithm string `json:"algorithm"`
	Size      int    `json:"size"`
	Root      string `json:"root"`
}

// Checkpoint is a committed summary of chain state at a point in time.
// Its checkpoint_digest commits to every other field, so two
// checkpoints with equal digests are equal in everything that matters.
type Checkpoint struct {
	CheckpointType   string               `json:"checkpoint_type"`
	GenesisRoot      string               `json:"genesis_root"`
	FinalStateRoot   string               `json:"final_state_root"`
	ReceiptCount     int                  `json:"receipt_count"`
	Height           int                  `json:"height"`
	MMR              MMRCheckpointSummary `json:"mmr"`
	CheckpointDigest string               `json:"checkpoint_digest"`
}

// newCheckpoint builds and seals a Checkpoint from a chain's current
// state. checkpoint_digest is computed over every other field, per
// spec.md §3.4.
func newCheckpoint(genesisRoot, finalStateRoot string, receiptCount int, mmrSize int, mmrRoot string) (Checkpoint, error) {
	cp := Checkpoint{
		CheckpointType: CheckpointType,
		GenesisRoot:    genesisRoot,
		FinalStateRoot: finalStateRoot,
		ReceiptCount:   receiptCount,
		Height:         receiptCount,
		MMR: MMRCheckpointSummary{
			MMRType:   "MEZReceiptMMR",
			Algorithm: "sha256",
			Size:      mmrSize,
			Root:      mmrRoot,
		},
	}
	d, err := canon.DigestValue(cp)
	if err != nil {
		return Checkpoint{}, err
	}
	cp.CheckpointDigest = d.Hex()
	return cp, nil
}
