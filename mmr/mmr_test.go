package mmr

import (
	"testing"

	"github.com/mezcorridor/corridor-core/canon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestFor(t *testing.T, label string) canon.Digest {
	t.Helper()
	d, err := canon.DigestValue(map[string]any{"label": label})
	require.NoError(t, err)
	return d
}

func TestInclusionRoundTrip(t *testing.T) {
	m := New()
	var digests []canon.Digest
	for i := 0; i < 11; i++ {
		d := digestFor(t, string(rune('a'+i)))
		digests = append(digests, d)
		m.Append(d)
	}

	for i := range digests {
		proof, err := m.InclusionProof(i)
		require.NoError(t, err)
		assert.True(t, VerifyInclusionProof(proof), "leaf %d should verify", i)
	}
}

func TestInclusionProofTamperFails(t *testing.T) {
	m := New()
	for i := 0; i < 5; i++ {
		m.Append(digestFor(t, string(rune('a'+i))))
	}
	proof, err := m.InclusionProof(2)
	require.NoError(t, err)
	require.True(t, VerifyInclusionProof(proof))

	if len(proof.Path) > 0 {
		proof.Path[0].Hash[0] ^= 0xFF
		assert.False(t, VerifyInclusionProof(proof))
	}

	proof2, err := m.InclusionProof(2)
	require.NoError(t, err)
	// Leaf 2 sits under Peaks[0], which verification rebuilds from the
	// path; tamper with the other peak, which it takes from the proof.
	proof2.Peaks[1].Hash[0] ^= 0xFF
	assert.False(t, VerifyInclusionProof(proof2))
}

func TestDeterminismMatchesIncrementalAppend(t *testing.T) {
	var digests []canon.Digest
	for i := 0; i < 23; i++ {
		digests = append(digests, digestFor(t, string(rune('a'+i%26))+string(rune('0'+i))))
	}

	info, err := RootFromNextRoots(digests)
	require.NoError(t, err)

	var peaks []Peak
	for _, d := range digests {
		peaks = AppendPeaks(peaks, []Hash{LeafHash(d)})
	}
	incrementalRoot, err := BagPeaks(peaks)
	require.NoError(t, err)

	assert.Equal(t, info.Root, incrementalRoot)
}

func TestPeakPlanDecomposesDescendingPowersOfTwo(t *testing.T) {
	plan := PeakPlan(17)
	require.Len(t, plan, 2)
	assert.Equal(t, 4, plan[0].Height)
	assert.Equal(t, 16, plan[0].Count)
	assert.Equal(t, 0, plan[1].Height)
	assert.Equal(t, 1, plan[1].Count)
}

func TestEmptyMMRHasZeroRoot(t *testing.T) {
	m := New()
	root, err := m.Root()
	require.NoError(t, err)
	assert.True(t, root == Hash{})
	assert.Equal(t, 0, m.Size())
}

func TestLeafAndNodeHashDomainSeparation(t *testing.T) {
	d := digestFor(t, "x")
	leaf := LeafHash(d)
	// The leaf hash must not equal the raw digest (0x00 prefix changes it).
	assert.NotEqual(t, Hash(d), leaf)
}
