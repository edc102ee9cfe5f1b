package fork

import (
	"time"

	"github.com/mezcorridor/corridor-core/canon"
	"github.com/mezcorridor/corridor-core/watcher"
)

const (
	// MaxClockSkew is the window within which two branch timestamps
	// are considered tied for the purpose of the first ordering level
	// (spec.md §6.4, default 5 min).
	MaxClockSkew = 5 * time.Minute
	// MaxFutureDrift bounds how far beyond now a branch timestamp may
	// sit before it is rejected as FutureTimestamp (default 60s).
	MaxFutureDrift = 60 * time.Second
	// MaxPastAge bounds how far before now a branch timestamp may sit
	// before it is rejected as PastTimestamp (default 24h).
	MaxPastAge = 24 * time.Hour
)

// Branch is one candidate extension of a receipt chain at a contested
// height (spec.md §3.5). Two branches are a fork iff their
// ReceiptDigest values differ while their parents coincide.
type Branch struct {
	ReceiptDigest canon.Digest
	Timestamp     time.Time
	Attestations  []watcher.Attestation
	NextRoot      string
}

// detectEquivocation returns the set of watcher key hexes that
// attested to both branches — a single watcher cannot legitimately
// back two conflicting branches at the same height.
func detectEquivocation(a, b Branch) []string {
	onA := make(map[string]struct{}, len(a.Attestations))
	for _, att := range a.Attestations {
		onA[att.WatcherKeyHex] = struct{}{}
	}
	var equivocators []string
	seen := make(map[string]struct{})
	for _, att := range b.Attestations {
		if _, ok := onA[att.WatcherKeyHex]; !ok {
			continue
		}
		if _, already := seen[att.WatcherKeyHex]; already {
			continue
		}
		seen[att.WatcherKeyHex] = struct{}{}
		equivocators = append(equivocators, att.WatcherKeyHex)
	}
	return equivocators
}

// DetectEquivocation is the exported form of detectEquivocation, kept
// as a standalone helper per spec.md §4.4 ("helper
// detect_equivocation(branch_a, branch_b) -> [watcher_key]").
func DetectEquivocation(a, b Branch) []string {
	return detectEquivocation(a, b)
}
