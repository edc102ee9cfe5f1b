package dispute

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mezcorridor/corridor-core/canon"
	"github.com/mezcorridor/corridor-core/corridorlog"
)

// EvidenceKind names which phase of the lifecycle an Evidence record
// was submitted for. The nine variants mirror the nine per-route
// evidence structs the original arbitration route takes
// (FilingEvidence, ReviewInitiationEvidence, EvidencePhaseEvidence,
// HearingScheduleEvidence, DecisionEvidence,
// EnforcementInitiationEvidence, ClosureEvidence, SettlementEvidence,
// DismissalEvidence), collapsed to an enum tag since the core only
// needs to record which phase the evidence belongs to, not route-
// specific payload shapes.
type EvidenceKind string

const (
	FilingEvidence                EvidenceKind = "FilingEvidence"
	ReviewInitiationEvidence      EvidenceKind = "ReviewInitiationEvidence"
	EvidencePhaseEvidence         EvidenceKind = "EvidencePhaseEvidence"
	HearingScheduleEvidence       EvidenceKind = "HearingScheduleEvidence"
	DecisionEvidence              EvidenceKind = "DecisionEvidence"
	EnforcementInitiationEvidence EvidenceKind = "EnforcementInitiationEvidence"
	ClosureEvidence               EvidenceKind = "ClosureEvidence"
	SettlementEvidence            EvidenceKind = "SettlementEvidence"
	DismissalEvidence             EvidenceKind = "DismissalEvidence"
)

// Evidence is the typed payload attached to a transition: a digest of
// the supporting document plus which phase it was submitted for.
type Evidence struct {
	Kind           EvidenceKind
	DocumentDigest canon.Digest
}

// TransitionEntry is one immutable, appended record of a dispute
// moving from one state to another.
type TransitionEntry struct {
	From      State
	To        State
	Evidence  Evidence
	Timestamp time.Time
}

// Dispute exclusively owns its transition log; its state is mutated
// only through FSM transitions (spec.md §3.9).
type Dispute struct {
	mu sync.Mutex

	id         uuid.UUID
	corridorID uuid.UUID
	state      State
	log        []TransitionEntry
}

// File creates a new dispute in the Filed state for corridorID, with
// an initial filing evidence entry.
func File(corridorID uuid.UUID, evidence Evidence, now time.Time) *Dispute {
	d := &Dispute{
		id:         uuid.New(),
		corridorID: corridorID,
		state:      Filed,
	}
	d.log = append(d.log, TransitionEntry{To: Filed, Evidence: evidence, Timestamp: now})
	return d
}

// ID returns the dispute's identifier.
func (d *Dispute) ID() uuid.UUID {
	return d.id
}

// State returns the dispute's current state.
func (d *Dispute) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// TransitionLog returns a copy of the dispute's transition history.
func (d *Dispute) TransitionLog() []TransitionEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]TransitionEntry, len(d.log))
	copy(out, d.log)
	return out
}

// transition moves the dispute from its current state to target,
// appending an immutable log entry on success. Invalid transitions
// fail with InvalidTransitionError — not a panic, not a silent no-op.
func (d *Dispute) transition(target State, evidence Evidence, now time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.state.CanTransitionTo(target) {
		corridorlog.Sugar.Debugf("dispute.transition: invalid from=%s to=%s dispute=%s", d.state, target, d.id)
		return &InvalidTransitionError{From: d.state, To: target}
	}
	d.log = append(d.log, TransitionEntry{From: d.state, To: target, Evidence: evidence, Timestamp: now})
	d.state = target
	return nil
}

func (d *Dispute) BeginReview(evidence Evidence, now time.Time) error {
	return d.transition(UnderReview, evidence, now)
}

func (d *Dispute) OpenEvidenceCollection(evidence Evidence, now time.Time) error {
	return d.transition(EvidenceCollection, evidence, now)
}

func (d *Dispute) ScheduleHearing(evidence Evidence, now time.Time) error {
	return d.transition(Hearing, evidence, now)
}

func (d *Dispute) Decide(evidence Evidence, now time.Time) error {
	return d.transition(Decided, evidence, now)
}

func (d *Dispute) Enforce(evidence Evidence, now time.Time) error {
	return d.transition(Enforced, evidence, now)
}

func (d *Dispute) Close(evidence Evidence, now time.Time) error {
	return d.transition(Closed, evidence, now)
}

func (d *Dispute) Dismiss(evidence Evidence, now time.Time) error {
	return d.transition(Dismissed, evidence, now)
}

func (d *Dispute) Settle(evidence Evidence, now time.Time) error {
	return d.transition(Settled, evidence, now)
}
