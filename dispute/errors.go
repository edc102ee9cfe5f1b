package dispute

import "fmt"

// InvalidTransitionError reports an attempt to move a dispute from a
// state to one it does not permit.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("dispute: invalid transition from %s to %s", e.From, e.To)
}
