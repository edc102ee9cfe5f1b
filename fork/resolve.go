package fork

import (
	"fmt"
	"time"

	"github.com/mezcorridor/corridor-core/corridorlog"
	"github.com/mezcorridor/corridor-core/watcher"
)

// Reason names why a resolver chose the winning branch.
type Reason string

const (
	ReasonEarlierTimestamp  Reason = "EarlierTimestamp"
	ReasonMoreAttestations  Reason = "MoreAttestations"
	ReasonLexicographic     Reason = "Lexicographic"
)

// Resolution is the outcome of resolving a fork between two branches.
type Resolution struct {
	Winner       Branch
	Reason       Reason
	WinningCount int
	LosingCount  int
}

// Resolve picks a winner between a and b using the three-level
// ordering of spec.md §4.4: timestamp (outside MaxClockSkew), then
// verified attestation count, then lexicographic next_root. Equivocation
// and timestamp-bound violations are checked first and fail resolution
// outright. It applies the package's default skew/drift/age bounds;
// callers carrying a deployment-specific config.Config should use
// ResolveWithLimits instead.
func Resolve(registry *watcher.Registry, now time.Time, a, b Branch) (Resolution, error) {
	return ResolveWithLimits(registry, now, a, b, Limits{
		MaxClockSkew:   MaxClockSkew,
		MaxFutureDrift: MaxFutureDrift,
		MaxPastAge:     MaxPastAge,
	})
}

// Limits carries the three timestamp bounds Resolve applies, so a
// transport layer can thread its config.Config's MaxClockSkew /
// MaxFutureDrift / MaxPastAge through without this package importing
// the config package back (avoiding an import cycle for what is
// otherwise a leaf package).
type Limits struct {
	MaxClockSkew   time.Duration
	MaxFutureDrift time.Duration
	MaxPastAge     time.Duration
}

// ResolveWithLimits is Resolve parameterized by an explicit Limits
// rather than the package defaults.
func ResolveWithLimits(registry *watcher.Registry, now time.Time, a, b Branch, limits Limits) (Resolution, error) {
	for _, br := range []Branch{a, b} {
		if br.Timestamp.After(now.Add(limits.MaxFutureDrift)) {
			return Resolution{}, fmt.Errorf("%w: timestamp=%s now=%s", ErrFutureTimestamp, br.Timestamp, now)
		}
		if br.Timestamp.Before(now.Add(-limits.MaxPastAge)) {
			return Resolution{}, fmt.Errorf("%w: timestamp=%s now=%s", ErrPastTimestamp, br.Timestamp, now)
		}
	}

	if equivocators := detectEquivocation(a, b); len(equivocators) > 0 {
		corridorlog.Sugar.Warnw("fork.resolve: equivocation detected", "watchers", equivocators)
		return Resolution{}, fmt.Errorf("%w: watchers=%v", ErrEquivocationDetected, equivocators)
	}

	skew := a.Timestamp.Sub(b.Timestamp)
	if skew < 0 {
		skew = -skew
	}
	if skew > limits.MaxClockSkew {
		if a.Timestamp.Before(b.Timestamp) {
			return Resolution{Winner: a, Reason: ReasonEarlierTimestamp}, nil
		}
		return Resolution{Winner: b, Reason: ReasonEarlierTimestamp}, nil
	}

	countA := registry.VerifiedCount(a.NextRoot, a.Attestations)
	countB := registry.VerifiedCount(b.NextRoot, b.Attestations)
	if countA != countB {
		if countA > countB {
			return Resolution{Winner: a, Reason: ReasonMoreAttestations, WinningCount: countA, LosingCount: countB}, nil
		}
		return Resolution{Winner: b, Reason: ReasonMoreAttestations, WinningCount: countB, LosingCount: countA}, nil
	}

	if a.NextRoot <= b.NextRoot {
		return Resolution{Winner: a, Reason: ReasonLexicographic, WinningCount: countA, LosingCount: countB}, nil
	}
	return Resolution{Winner: b, Reason: ReasonLexicographic, WinningCount: countB, LosingCount: countA}, nil
}
