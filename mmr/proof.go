package mmr

import (
	"errors"

	"github.com/mezcorridor/corridor-core/canon"
)

// ErrOutOfRange is returned when a leaf or peak index falls outside
// the bounds of the MMR it is being addressed against.
var ErrOutOfRange = errors.New("mmr: index out of range")

// Side indicates which side of the current node a proof step's
// sibling hash sits on.
type Side int

const (
	// SideLeft means the sibling is to the left of the accumulated hash.
	SideLeft Side = iota
	// SideRight means the sibling is to the right of the accumulated hash.
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// PathStep is one step of a Merkle inclusion proof: a sibling hash and
// which side it sits on relative to the node being proved.
type PathStep struct {
	Side Side
	Hash Hash
}

// InclusionProof carries everything required to independently verify
// that a receipt's next_root is included in the MMR at a claimed root,
// without access to the rest of the accumulator.
type InclusionProof struct {
	Size              int
	Root              Hash
	LeafIndex         int
	ReceiptNextRoot   canon.Digest
	LeafHash          Hash
	PeakIndex         int
	PeakHeight        int
	Path              []PathStep
	Peaks             []Peak
	ComputedPeakRoot  Hash
}

// BuildInclusionProof builds a proof of inclusion for the leaf at
// leafIndex in the MMR formed by appending nextRoots in order.
func BuildInclusionProof(nextRoots []canon.Digest, leafIndex int) (InclusionProof, error) {
	size := len(nextRoots)
	if size == 0 {
		return InclusionProof{}, errors.New("mmr: cannot build proof for empty mmr")
	}
	if leafIndex < 0 || leafIndex >= size {
		return InclusionProof{}, ErrOutOfRange
	}

	leafHashes := make([]Hash, size)
	for i, nr := range nextRoots {
		leafHashes[i] = LeafHash(nr)
	}

	peaks := BuildPeaks(leafHashes)
	root, err := BagPeaks(peaks)
	if err != nil {
		return InclusionProof{}, err
	}

	peakIndex, peakStart, peakHeight, err := FindPeakForLeaf(size, leafIndex)
	if err != nil {
		return InclusionProof{}, err
	}

	peakLeafCount := 1 << peakHeight
	localPos := leafIndex - peakStart
	peakLeaves := leafHashes[peakStart : peakStart+peakLeafCount]

	peakRoot, path, err := merklePathForPowerOfTwo(peakLeaves, localPos)
	if err != nil {
		return InclusionProof{}, err
	}

	return InclusionProof{
		Size:             size,
		Root:             root,
		LeafIndex:        leafIndex,
		ReceiptNextRoot:  nextRoots[leafIndex],
		LeafHash:         leafHashes[leafIndex],
		PeakIndex:        peakIndex,
		PeakHeight:       peakHeight,
		Path:             path,
		Peaks:            peaks,
		ComputedPeakRoot: peakRoot,
	}, nil
}

// merklePathForPowerOfTwo computes the Merkle root and sibling path
// for a power-of-two-sized leaf list.
func merklePathForPowerOfTwo(leafHashes []Hash, leafPos int) (Hash, []PathStep, error) {
	n := len(leafHashes)
	if n == 0 {
		return Hash{}, nil, errors.New("mmr: leaf hashes must be non-empty")
	}
	if n&(n-1) != 0 {
		return Hash{}, nil, errors.New("mmr: leaf hashes length must be a power of two")
	}
	if leafPos < 0 || leafPos >= n {
		return Hash{}, nil, ErrOutOfRange
	}

	level := make([]Hash, n)
	copy(level, leafHashes)
	pos := leafPos
	var path []PathStep

	for len(level) > 1 {
		siblingPos := pos ^ 1
		siblingHash := level[siblingPos]
		side := SideRight
		if siblingPos < pos {
			side = SideLeft
		}
		path = append(path, PathStep{Side: side, Hash: siblingHash})

		next := make([]Hash, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = NodeHash(level[i], level[i+1])
		}
		level = next
		pos /= 2
	}
	return level[0], path, nil
}
