package bridge

// DynamicState is a corridor's current operational status. Only
// Active corridors contribute edges to the routing graph.
type DynamicState string

const (
	Active     DynamicState = "Active"
	Halted     DynamicState = "Halted"
	Suspended  DynamicState = "Suspended"
)

// Corridor is a bidirectional settlement link between two
// jurisdictions, carrying its own fee and settlement time (spec.md
// §3.8).
type Corridor struct {
	CorridorID         string
	FromJurisdiction   string
	ToJurisdiction     string
	FeeBps             int
	SettlementTimeSecs int
	State              DynamicState
}

// Hop is one traversed edge of a Route.
type Hop struct {
	CorridorID         string
	FromJurisdiction   string
	ToJurisdiction     string
	FeeBps             int
	SettlementTimeSecs int
}

// Route is an ordered path of hops between two jurisdictions.
type Route struct {
	Hops                    []Hop
	HopCount                int
	TotalFeeBps             int
	TotalSettlementTimeSecs int
}
