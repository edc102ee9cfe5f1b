package dispute

// State is a point in the dispute lifecycle: a linear main track
// (Filed through Closed) plus two terminal side-branches reachable
// from earlier states (spec.md §4.9).
type State string

const (
	Filed              State = "Filed"
	UnderReview        State = "UnderReview"
	EvidenceCollection State = "EvidenceCollection"
	Hearing            State = "Hearing"
	Decided            State = "Decided"
	Enforced           State = "Enforced"
	Closed             State = "Closed"
	Dismissed          State = "Dismissed"
	Settled            State = "Settled"
)

// validTransitions maps each state to the states it may move to.
var validTransitions = map[State][]State{
	Filed:              {UnderReview, Dismissed, Settled},
	UnderReview:        {EvidenceCollection, Dismissed, Settled},
	EvidenceCollection: {Hearing, Settled},
	Hearing:            {Decided, Settled},
	Decided:            {Enforced},
	Enforced:           {Closed},
	Closed:             {},
	Dismissed:          {},
	Settled:            {},
}

// ValidTransitions returns the states s may move to next. Closed,
// Dismissed, and Settled return an empty slice — they are terminal.
func (s State) ValidTransitions() []State {
	targets := validTransitions[s]
	out := make([]State, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether s may move directly to target.
func (s State) CanTransitionTo(target State) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no valid outgoing transitions.
func (s State) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}
