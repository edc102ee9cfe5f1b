package netting

import (
	"fmt"
	"sort"
)

// Obligation is one owed amount between two parties in a currency
// (spec.md §3.7). Priority is an optional ordering hint the engine
// itself does not interpret.
type Obligation struct {
	FromParty string
	ToParty   string
	Amount    int64
	Currency  string
	Priority  int
}

// NetPosition is a party's accumulated receivable/payable in one
// currency, and the resulting net.
type NetPosition struct {
	Party      string
	Currency   string
	Receivable int64
	Payable    int64
	Net        int64
}

// SettlementLeg is one payment produced by netting.
type SettlementLeg struct {
	FromParty string
	ToParty   string
	Amount    int64
	Currency  string
}

// Plan is the result of computing a netting engine's obligations.
type Plan struct {
	GrossTotal      int64
	NetTotal        int64
	ReductionBps    int64
	NetPositions    []NetPosition
	SettlementLegs  []SettlementLeg
}

type key struct {
	party    string
	currency string
}

// Engine accumulates obligations and computes a netting Plan.
type Engine struct {
	obligations []Obligation
}

// New returns an empty netting engine.
func New() *Engine {
	return &Engine{}
}

// AddObligation records ob. Non-positive amounts are rejected with
// ErrInvalidAmount and not recorded.
func (e *Engine) AddObligation(ob Obligation) error {
	if ob.Amount <= 0 {
		return fmt.Errorf("%w: amount=%d", ErrInvalidAmount, ob.Amount)
	}
	e.obligations = append(e.obligations, ob)
	return nil
}

// ObligationCount returns the number of obligations recorded so far.
func (e *Engine) ObligationCount() int {
	return len(e.obligations)
}

// ComputePlan computes the netting plan over all recorded obligations.
func (e *Engine) ComputePlan() Plan {
	positions := make(map[key]*NetPosition)
	order := make(map[key]int)
	var keys []key

	touch := func(party, currency string) *NetPosition {
		k := key{party, currency}
		if p, ok := positions[k]; ok {
			return p
		}
		p := &NetPosition{Party: party, Currency: currency}
		positions[k] = p
		order[k] = len(keys)
		keys = append(keys, k)
		return p
	}

	var grossTotal int64
	for _, ob := range e.obligations {
		touch(ob.FromParty, ob.Currency).Payable += ob.Amount
		touch(ob.ToParty, ob.Currency).Receivable += ob.Amount
		grossTotal += ob.Amount
	}

	for _, k := range keys {
		p := positions[k]
		p.Net = p.Receivable - p.Payable
	}

	byCurrency := make(map[string][]key)
	for _, k := range keys {
		byCurrency[k.currency] = append(byCurrency[k.currency], k)
	}
	currencies := make([]string, 0, len(byCurrency))
	for c := range byCurrency {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	var legs []SettlementLeg
	var netTotal int64
	for _, currency := range currencies {
		ks := byCurrency[currency]
		sort.Slice(ks, func(i, j int) bool { return ks[i].party < ks[j].party })

		var surpluses, deficits []*NetPosition
		for _, k := range ks {
			p := positions[k]
			switch {
			case p.Net > 0:
				surpluses = append(surpluses, p)
			case p.Net < 0:
				deficits = append(deficits, p)
			}
		}

		si, di := 0, 0
		sRemaining := cloneRemaining(surpluses)
		dRemaining := cloneRemaining(deficits)
		for si < len(surpluses) && di < len(deficits) {
			s := surpluses[si]
			d := deficits[di]
			amount := min64(sRemaining[si], -dRemaining[di])
			if amount > 0 {
				legs = append(legs, SettlementLeg{
					FromParty: d.Party,
					ToParty:   s.Party,
					Amount:    amount,
					Currency:  currency,
				})
				netTotal += amount
			}
			sRemaining[si] -= amount
			dRemaining[di] += amount
			if sRemaining[si] == 0 {
				si++
			}
			if dRemaining[di] == 0 {
				di++
			}
		}
	}

	netPositions := make([]NetPosition, len(keys))
	for i, k := range keys {
		netPositions[i] = *positions[k]
	}
	sort.Slice(netPositions, func(i, j int) bool {
		if netPositions[i].Party != netPositions[j].Party {
			return netPositions[i].Party < netPositions[j].Party
		}
		return netPositions[i].Currency < netPositions[j].Currency
	})

	reductionBps := int64(10000)
	if grossTotal > 0 {
		reductionBps = 10000 * (grossTotal - netTotal) / grossTotal
		if reductionBps < 0 {
			reductionBps = 0
		}
		if reductionBps > 10000 {
			reductionBps = 10000
		}
	}

	return Plan{
		GrossTotal:     grossTotal,
		NetTotal:       netTotal,
		ReductionBps:   reductionBps,
		NetPositions:   netPositions,
		SettlementLegs: legs,
	}
}

func cloneRemaining(positions []*NetPosition) []int64 {
	out := make([]int64, len(positions))
	for i, p := range positions {
		if p.Net > 0 {
			out[i] = p.Net
		} else {
			out[i] = p.Net
		}
	}
	return out
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
