package compliance

import (
	"sort"
	"time"
)

// entry is the per-domain state a tensor holds: its compliance level,
// the evidence digests supporting it, and an optional expiry.
type entry struct {
	state    State
	evidence []string
	expiry   *time.Time
}

// Tensor holds a compliance state per domain. Construct one with New:
// Set and Merge write to its entries map, which is nil in the zero
// value. Get defaults any unset domain to Pending, so an untouched
// tensor fails closed rather than silently passing.
type Tensor struct {
	entries map[Domain]entry
}

// New returns an empty compliance tensor.
func New() *Tensor {
	return &Tensor{entries: make(map[Domain]entry)}
}

// Set records domain's state with its supporting evidence digests and
// an optional expiry.
func (t *Tensor) Set(domain Domain, state State, evidenceDigests []string, expiry *time.Time) {
	ev := make([]string, len(evidenceDigests))
	copy(ev, evidenceDigests)
	t.entries[domain] = entry{state: state, evidence: ev, expiry: expiry}
}

// Get returns domain's state, defaulting to Pending (fail-closed) if
// the domain has never been set.
func (t *Tensor) Get(domain Domain) State {
	e, ok := t.entries[domain]
	if !ok {
		return Pending
	}
	return e.state
}

// Evidence returns the evidence digests recorded for domain.
func (t *Tensor) Evidence(domain Domain) []string {
	e, ok := t.entries[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(e.evidence))
	copy(out, e.evidence)
	return out
}

// Merge consumes other, producing the pointwise meet of t and other
// across every domain either has touched, and unioning evidence digest
// lists per domain. A domain touched by only one of the two tensors
// still meets against the other's implicit Pending default, so a
// domain the untouched side never assessed pulls the merged state down
// rather than passing through unexamined. t is mutated in place; other
// is left unmodified.
func (t *Tensor) Merge(other *Tensor) {
	domains := make(map[Domain]struct{}, len(t.entries)+len(other.entries))
	for domain := range t.entries {
		domains[domain] = struct{}{}
	}
	for domain := range other.entries {
		domains[domain] = struct{}{}
	}

	for domain := range domains {
		te, tok := t.entries[domain]
		oe, ook := other.entries[domain]
		if !tok {
			te.state = Pending
		}
		if !ook {
			oe.state = Pending
		}

		merged := entry{
			state:    Meet(te.state, oe.state),
			evidence: unionStrings(te.evidence, oe.evidence),
		}

		switch {
		case te.expiry != nil:
			merged.expiry = te.expiry
		case oe.expiry != nil:
			merged.expiry = oe.expiry
		}

		t.entries[domain] = merged
	}
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Slice is a view over a subset of a tensor's domains.
type Slice struct {
	domains []Domain
	states  map[Domain]State
}

// slice builds a Slice over domains, reading each domain's current
// state from t (Pending for unset domains).
func (t *Tensor) slice(domains []Domain) Slice {
	states := make(map[Domain]State, len(domains))
	for _, d := range domains {
		states[d] = t.Get(d)
	}
	return Slice{domains: domains, states: states}
}

// Slice returns a view restricted to the given domains.
func (t *Tensor) Slice(domains ...Domain) Slice {
	return t.slice(domains)
}

// FullSlice returns a view over all 20 domains.
func (t *Tensor) FullSlice() Slice {
	return t.slice(AllDomains)
}

// AggregateState is the meet over every domain in the slice. An empty
// slice MUST return Pending — see P-TENSOR-EMPTY.
func (s Slice) AggregateState() State {
	if len(s.domains) == 0 {
		return Pending
	}
	agg := Compliant
	for _, d := range s.domains {
		agg = Meet(agg, s.states[d])
	}
	return agg
}

// AllPassing reports whether every domain in the slice is Compliant.
// An empty slice is never passing.
func (s Slice) AllPassing() bool {
	if len(s.domains) == 0 {
		return false
	}
	for _, d := range s.domains {
		if s.states[d] != Compliant {
			return false
		}
	}
	return true
}

// NonCompliantDomains returns the domains in the slice currently at
// NonCompliant, in a stable (alphabetical) order.
func (s Slice) NonCompliantDomains() []Domain {
	var out []Domain
	for _, d := range s.domains {
		if s.states[d] == NonCompliant {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
