package bridge

import (
	"container/heap"
	"fmt"
)

// edge is one directed traversal option out of a jurisdiction.
type edge struct {
	hop Hop
	to  string
}

// Router builds a routing graph from a corridor set and answers
// shortest-path queries over it.
type Router struct {
	adjacency map[string][]edge
}

// NewRouter builds a Router from corridors. Halted and Suspended
// corridors contribute no edges — their absence from the graph is the
// economic consequence of their dynamic state (spec.md §4.7).
func NewRouter(corridors []Corridor) *Router {
	r := &Router{adjacency: make(map[string][]edge)}
	for _, c := range corridors {
		if c.State != Active {
			continue
		}
		fwd := Hop{CorridorID: c.CorridorID, FromJurisdiction: c.FromJurisdiction, ToJurisdiction: c.ToJurisdiction, FeeBps: c.FeeBps, SettlementTimeSecs: c.SettlementTimeSecs}
		rev := Hop{CorridorID: c.CorridorID, FromJurisdiction: c.ToJurisdiction, ToJurisdiction: c.FromJurisdiction, FeeBps: c.FeeBps, SettlementTimeSecs: c.SettlementTimeSecs}
		r.adjacency[c.FromJurisdiction] = append(r.adjacency[c.FromJurisdiction], edge{hop: fwd, to: c.ToJurisdiction})
		r.adjacency[c.ToJurisdiction] = append(r.adjacency[c.ToJurisdiction], edge{hop: rev, to: c.FromJurisdiction})
	}
	return r
}

// dijkstraItem is one entry in the priority queue: a jurisdiction and
// its best-known cumulative (fee, settlement time) cost.
type dijkstraItem struct {
	jurisdiction string
	feeBps       int
	settleSecs   int
	path         []Hop
	index        int
}

type priorityQueue []*dijkstraItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].feeBps != pq[j].feeBps {
		return pq[i].feeBps < pq[j].feeBps
	}
	return pq[i].settleSecs < pq[j].settleSecs
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*dijkstraItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// FindRoute returns the minimum-fee (settlement-time tiebreak) path
// from source to target, traversing only Active corridors.
func (r *Router) FindRoute(source, target string) (Route, error) {
	if source == target {
		return Route{}, fmt.Errorf("%w: %s", ErrSameEndpoints, source)
	}

	best := map[string]dijkstraItem{source: {jurisdiction: source}}
	pq := &priorityQueue{{jurisdiction: source}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*dijkstraItem)
		if b, ok := best[current.jurisdiction]; ok {
			if current.feeBps > b.feeBps || (current.feeBps == b.feeBps && current.settleSecs > b.settleSecs) {
				continue
			}
		}
		if current.jurisdiction == target {
			return buildRoute(current.path), nil
		}
		for _, e := range r.adjacency[current.jurisdiction] {
			nextFee := current.feeBps + e.hop.FeeBps
			nextSettle := current.settleSecs + e.hop.SettlementTimeSecs
			if b, ok := best[e.to]; ok && (b.feeBps < nextFee || (b.feeBps == nextFee && b.settleSecs <= nextSettle)) {
				continue
			}
			nextPath := append(append([]Hop{}, current.path...), e.hop)
			best[e.to] = dijkstraItem{jurisdiction: e.to, feeBps: nextFee, settleSecs: nextSettle, path: nextPath}
			heap.Push(pq, &dijkstraItem{jurisdiction: e.to, feeBps: nextFee, settleSecs: nextSettle, path: nextPath})
		}
	}

	return Route{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, source, target)
}

func buildRoute(hops []Hop) Route {
	route := Route{Hops: hops, HopCount: len(hops)}
	for _, h := range hops {
		route.TotalFeeBps += h.FeeBps
		route.TotalSettlementTimeSecs += h.SettlementTimeSecs
	}
	return route
}
