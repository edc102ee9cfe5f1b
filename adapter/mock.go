package adapter

import (
	"context"
	"time"

	"github.com/mezcorridor/corridor-core/corridorlog"
)

// MockTaxAdapter is the {MockAdapter} variant of TaxCapability
// (spec.md §9.1): a deterministic flat-rate withholding calculator
// used in tests and local deployments where no tax authority HTTP
// endpoint is configured.
type MockTaxAdapter struct {
	// RateBps is the flat withholding rate in basis points applied to
	// every amount, regardless of party or jurisdiction.
	RateBps int64
}

var _ TaxCapability = MockTaxAdapter{}

func (m MockTaxAdapter) Withhold(ctx context.Context, partyID string, amount int64, currency string) (TaxWithholding, error) {
	withheld := amount * m.RateBps / 10000
	corridorlog.Sugar.Debugf("adapter.mocktax: party=%s amount=%d withheld=%d", partyID, amount, withheld)
	return TaxWithholding{
		PartyID:       partyID,
		WithheldMinor: withheld,
		Currency:      currency,
		TaxYear:       time.Now().UTC().Year(),
	}, nil
}

// MockIdentityAdapter is the {MockAdapter} variant of
// IdentityCapability: it verifies any non-empty document number,
// useful for local development and integration tests that do not
// exercise a real KYC provider.
type MockIdentityAdapter struct{}

var _ IdentityCapability = MockIdentityAdapter{}

func (MockIdentityAdapter) Verify(ctx context.Context, partyID string, claim IdentityClaim) (VerificationResult, error) {
	verified := claim.DocumentNumber != ""
	return VerificationResult{
		Verified:  verified,
		Reference: "mock-" + partyID,
		CheckedAt: time.Now().UTC(),
	}, nil
}

// MockPaymentRailAdapter is the {MockAdapter} variant of
// PaymentRailCapability: it accepts every submission immediately
// without reaching a real rail.
type MockPaymentRailAdapter struct{}

var _ PaymentRailCapability = MockPaymentRailAdapter{}

func (MockPaymentRailAdapter) Submit(ctx context.Context, messageID string, payload []byte) (RailAck, error) {
	return RailAck{RailReference: "mock-" + messageID, AcceptedAt: time.Now().UTC()}, nil
}
