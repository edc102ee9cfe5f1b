package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTaxAdapterWithholdsFlatRate(t *testing.T) {
	a := MockTaxAdapter{RateBps: 500}
	w, err := a.Withhold(context.Background(), "acme", 1_000_000, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), w.WithheldMinor)
	assert.Equal(t, "acme", w.PartyID)
}

func TestMockIdentityAdapterVerifiesNonEmptyDocument(t *testing.T) {
	a := MockIdentityAdapter{}
	result, err := a.Verify(context.Background(), "party1", IdentityClaim{DocumentNumber: "P123", JurisdictionID: "pk"})
	require.NoError(t, err)
	assert.True(t, result.Verified)

	result, err = a.Verify(context.Background(), "party1", IdentityClaim{})
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestMockPaymentRailAdapterAcceptsAllSubmissions(t *testing.T) {
	a := MockPaymentRailAdapter{}
	ack, err := a.Submit(context.Background(), "msg-1", []byte("<xml/>"))
	require.NoError(t, err)
	assert.Equal(t, "mock-msg-1", ack.RailReference)
}
