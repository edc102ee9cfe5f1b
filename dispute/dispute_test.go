package dispute

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalStatesHaveNoValidTransitions(t *testing.T) {
	for _, s := range []State{Closed, Dismissed, Settled} {
		assert.Empty(t, s.ValidTransitions())
		assert.True(t, s.IsTerminal())
	}
}

func TestFullLifecycleTransitions(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := File(uuid.New(), Evidence{Kind: FilingEvidence}, now)

	require.NoError(t, d.BeginReview(Evidence{Kind: ReviewInitiationEvidence}, now))
	require.NoError(t, d.OpenEvidenceCollection(Evidence{Kind: EvidencePhaseEvidence}, now))
	require.NoError(t, d.ScheduleHearing(Evidence{Kind: HearingScheduleEvidence}, now))
	require.NoError(t, d.Decide(Evidence{Kind: DecisionEvidence}, now))
	require.NoError(t, d.Enforce(Evidence{Kind: EnforcementInitiationEvidence}, now))
	require.NoError(t, d.Close(Evidence{Kind: ClosureEvidence}, now))

	assert.Equal(t, Closed, d.State())
	assert.Len(t, d.TransitionLog(), 7)
}

func TestInvalidTransitionFails(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := File(uuid.New(), Evidence{Kind: FilingEvidence}, now)

	err := d.Decide(Evidence{Kind: DecisionEvidence}, now)
	var invalidErr *InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, Filed, invalidErr.From)
	assert.Equal(t, Decided, invalidErr.To)
	assert.Equal(t, Filed, d.State())
}

func TestDismissOnlyFromFiledOrUnderReview(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := File(uuid.New(), Evidence{Kind: FilingEvidence}, now)
	require.NoError(t, d.BeginReview(Evidence{Kind: ReviewInitiationEvidence}, now))
	require.NoError(t, d.OpenEvidenceCollection(Evidence{Kind: EvidencePhaseEvidence}, now))

	err := d.Dismiss(Evidence{Kind: DismissalEvidence}, now)
	var invalidErr *InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
}

func TestSettleFromAnyPreDecisionState(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := File(uuid.New(), Evidence{Kind: FilingEvidence}, now)
	require.NoError(t, d.BeginReview(Evidence{Kind: ReviewInitiationEvidence}, now))
	require.NoError(t, d.OpenEvidenceCollection(Evidence{Kind: EvidencePhaseEvidence}, now))
	require.NoError(t, d.ScheduleHearing(Evidence{Kind: HearingScheduleEvidence}, now))
	require.NoError(t, d.Settle(Evidence{Kind: SettlementEvidence}, now))
	assert.Equal(t, Settled, d.State())
}
