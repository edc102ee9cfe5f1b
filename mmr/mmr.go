package mmr

import "github.com/mezcorridor/corridor-core/canon"

// MerkleMountainRange is a stateful wrapper over the functional peak
// operations above, maintaining leaf and peak state across sequential
// appends. A receipt chain embeds one of these and feeds it each
// receipt's next_root as it is sealed.
type MerkleMountainRange struct {
	nextRoots []canon.Digest
	leafHashes []Hash
	peaks      []Peak
}

// New returns an empty MMR.
func New() *MerkleMountainRange {
	return &MerkleMountainRange{}
}

// Append adds a single receipt next_root digest to the MMR.
func (m *MerkleMountainRange) Append(nextRoot canon.Digest) {
	leaf := LeafHash(nextRoot)
	m.peaks = appendOne(m.peaks, leaf)
	m.leafHashes = append(m.leafHashes, leaf)
	m.nextRoots = append(m.nextRoots, nextRoot)
}

// Size returns the current number of leaves.
func (m *MerkleMountainRange) Size() int {
	return len(m.leafHashes)
}

// Peaks returns a copy of the current peak list.
func (m *MerkleMountainRange) Peaks() []Peak {
	out := make([]Peak, len(m.peaks))
	copy(out, m.peaks)
	return out
}

// Root returns the current bagged root. It is the zero hash for an
// empty MMR.
func (m *MerkleMountainRange) Root() (Hash, error) {
	if len(m.peaks) == 0 {
		return Hash{}, nil
	}
	return BagPeaks(m.peaks)
}

// InclusionProof builds an inclusion proof for leafIndex against the
// MMR's current state.
func (m *MerkleMountainRange) InclusionProof(leafIndex int) (InclusionProof, error) {
	return BuildInclusionProof(m.nextRoots, leafIndex)
}

// NextRoots returns a copy of the leaf digests in append order.
func (m *MerkleMountainRange) NextRoots() []canon.Digest {
	out := make([]canon.Digest, len(m.nextRoots))
	copy(out, m.nextRoots)
	return out
}
