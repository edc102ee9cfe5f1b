package mmr

import "github.com/mezcorridor/corridor-core/canon"

// RootInfo is the result of computing an MMR root and peak list from a
// sequence of receipt next_root digests.
type RootInfo struct {
	Size  int
	Root  Hash
	Peaks []Peak
}

// RootFromNextRoots computes the MMR root and peak list for a sequence
// of receipt next_root digests, in append order. Its result must equal
// incremental AppendPeaks over the same sequence (P-MMR-DETERMINISM).
// Checkpoints are built from a chain's MerkleMountainRange, not through
// this function.
func RootFromNextRoots(nextRoots []canon.Digest) (RootInfo, error) {
	leafHashes := make([]Hash, len(nextRoots))
	for i, nr := range nextRoots {
		leafHashes[i] = LeafHash(nr)
	}
	peaks := BuildPeaks(leafHashes)
	root, err := BagPeaks(peaks)
	if err != nil {
		// An empty sequence has no bagged root; report the zero hash
		// rather than propagating ErrEmptyPeaks, since size 0 is a
		// legitimate (if degenerate) MMR state for a fresh chain.
		return RootInfo{Size: 0, Root: Hash{}, Peaks: nil}, nil
	}
	return RootInfo{Size: len(nextRoots), Root: root, Peaks: peaks}, nil
}
