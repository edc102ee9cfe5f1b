// Package adapter declares the capability interfaces the transport
// layer calls through to reach the core (spec.md §6.1), and the
// third-party capability bundles spec.md §9.1 calls out: tax,
// identity, and payment-rail adapters that vary by {MockAdapter,
// HttpAdapter} depending on deployment configuration. No HTTP router
// or net/http handler lives here — spec.md's explicit Non-goal keeps
// transport out of the core; these are the seams transport is built
// against.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mezcorridor/corridor-core/bridge"
	"github.com/mezcorridor/corridor-core/dispute"
	"github.com/mezcorridor/corridor-core/iso20022"
	"github.com/mezcorridor/corridor-core/netting"
)

// DisputeService is the capability the transport layer's
// /v1/disputes routes call through (spec.md §6.1).
type DisputeService interface {
	File(ctx context.Context, corridorID uuid.UUID, evidence dispute.Evidence) (*dispute.Dispute, error)
	Transition(ctx context.Context, id uuid.UUID, to dispute.State, evidence dispute.Evidence) (*dispute.Dispute, error)
	Get(ctx context.Context, id uuid.UUID) (*dispute.Dispute, bool)
	List(ctx context.Context) []*dispute.Dispute
}

// SettlementService is the capability backing
// POST /v1/corridors/:id/settlement/compute.
type SettlementService interface {
	ComputePlan(ctx context.Context, corridorID uuid.UUID, obligations []netting.Obligation) (netting.Plan, error)
}

// RoutingService is the capability backing POST /v1/corridors/route.
type RoutingService interface {
	FindRoute(ctx context.Context, source, target string) (bridge.Route, error)
}

// InstructionService is the capability backing
// POST /v1/corridors/:id/settlement/instruct.
type InstructionService interface {
	Instruct(ctx context.Context, legs []netting.SettlementLeg, instructingAgentBIC string) (iso20022.BatchResult, error)
}

// TaxCapability is the abstract shape of a tax adapter (spec.md §9.1):
// a third-party collaborator the core calls out to, never implements.
type TaxCapability interface {
	Withhold(ctx context.Context, partyID string, amount int64, currency string) (TaxWithholding, error)
}

// TaxWithholding is the result of a tax adapter's withholding
// calculation for one settlement leg.
type TaxWithholding struct {
	PartyID       string
	WithheldMinor int64
	Currency      string
	TaxYear       int
}

// IdentityCapability verifies a party's identity claim, returning an
// opaque verification reference the caller persists for audit.
type IdentityCapability interface {
	Verify(ctx context.Context, partyID string, claim IdentityClaim) (VerificationResult, error)
}

// IdentityClaim is the minimal claim an identity adapter checks.
type IdentityClaim struct {
	DocumentType   string
	DocumentNumber string
	JurisdictionID string
}

// VerificationResult is what an identity adapter returns on success.
type VerificationResult struct {
	Verified  bool
	Reference string
	CheckedAt time.Time
}

// PaymentRailCapability submits a generated ISO 20022 instruction to a
// settlement rail and reports back the rail's own reference.
type PaymentRailCapability interface {
	Submit(ctx context.Context, messageID string, payload []byte) (RailAck, error)
}

// RailAck is a payment rail's acknowledgement of a submitted
// instruction.
type RailAck struct {
	RailReference string
	AcceptedAt    time.Time
}
