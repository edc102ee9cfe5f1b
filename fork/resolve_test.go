package fork

import (
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/mezcorridor/corridor-core/canon"
	"github.com/mezcorridor/corridor-core/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttestation(t *testing.T, key ed25519.PrivateKey, keyHex, candidateRoot string, height int, ts time.Time) watcher.Attestation {
	t.Helper()
	a := watcher.Attestation{
		WatcherKeyHex: keyHex,
		ParentRoot:    "p",
		CandidateRoot: candidateRoot,
		Height:        height,
		Timestamp:     canon.NewTimestamp(ts),
	}
	signed, err := watcher.Sign(key, a)
	require.NoError(t, err)
	return signed
}

// S4 — fork resolution by attestation count.
func TestResolveByAttestationCount(t *testing.T) {
	registry := watcher.NewRegistry()
	pubW1, privW1, _ := ed25519.GenerateKey(nil)
	pubW2, privW2, _ := ed25519.GenerateKey(nil)
	pubW3, privW3, _ := ed25519.GenerateKey(nil)
	_, privUnregistered, _ := ed25519.GenerateKey(nil)
	registry.Register("w1", pubW1)
	registry.Register("w2", pubW2)
	registry.Register("w3", pubW3)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	branchA := Branch{
		Timestamp: now,
		NextRoot:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Attestations: []watcher.Attestation{
			newAttestation(t, privW1, "w1", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 1, now),
			newAttestation(t, privW2, "w2", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 1, now),
		},
	}
	branchB := Branch{
		Timestamp: now,
		NextRoot:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Attestations: []watcher.Attestation{
			newAttestation(t, privW3, "w3", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 1, now),
			newAttestation(t, privUnregistered, "unregistered", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 1, now),
		},
	}

	res, err := Resolve(registry, now, branchA, branchB)
	require.NoError(t, err)
	assert.Equal(t, branchA.NextRoot, res.Winner.NextRoot)
	assert.Equal(t, ReasonMoreAttestations, res.Reason)
	assert.Equal(t, 2, res.WinningCount)
	assert.Equal(t, 1, res.LosingCount)
}

// S5 — equivocation rejected.
func TestResolveRejectsEquivocation(t *testing.T) {
	registry := watcher.NewRegistry()
	pubW, privW, _ := ed25519.GenerateKey(nil)
	registry.Register("w", pubW)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rootA := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	rootB := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	branchA := Branch{Timestamp: now, NextRoot: rootA, Attestations: []watcher.Attestation{
		newAttestation(t, privW, "w", rootA, 1, now),
	}}
	branchB := Branch{Timestamp: now, NextRoot: rootB, Attestations: []watcher.Attestation{
		newAttestation(t, privW, "w", rootB, 1, now),
	}}

	_, err := Resolve(registry, now, branchA, branchB)
	assert.ErrorIs(t, err, ErrEquivocationDetected)
}

// S6 — backdated branch rejected.
func TestResolveRejectsPastTimestamp(t *testing.T) {
	registry := watcher.NewRegistry()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	branchA := Branch{Timestamp: time.Unix(0, 0).UTC(), NextRoot: "a"}
	branchB := Branch{Timestamp: now, NextRoot: "b"}

	_, err := Resolve(registry, now, branchA, branchB)
	assert.ErrorIs(t, err, ErrPastTimestamp)
}

func TestResolveByTimestampIgnoresAttestationCount(t *testing.T) {
	registry := watcher.NewRegistry()
	pubW1, privW1, _ := ed25519.GenerateKey(nil)
	pubW2, privW2, _ := ed25519.GenerateKey(nil)
	registry.Register("w1", pubW1)
	registry.Register("w2", pubW2)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rootA := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	rootB := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	branchA := Branch{Timestamp: now, NextRoot: rootA}
	branchB := Branch{
		Timestamp: now.Add(-10 * time.Minute),
		NextRoot:  rootB,
		Attestations: []watcher.Attestation{
			newAttestation(t, privW1, "w1", rootB, 1, now),
			newAttestation(t, privW2, "w2", rootB, 1, now),
		},
	}

	res, err := Resolve(registry, now, branchA, branchB)
	require.NoError(t, err)
	assert.Equal(t, branchB.NextRoot, res.Winner.NextRoot)
	assert.Equal(t, ReasonEarlierTimestamp, res.Reason)
}
