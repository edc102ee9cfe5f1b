package pack

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/mezcorridor/corridor-core/canon"
	"github.com/mezcorridor/corridor-core/compliance"
)

var (
	jurisdictionIDPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z0-9]+(-[a-z0-9]+)*)?$`)
	digestHexPattern      = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// JurisdictionLayer contributes a disjoint subset of the compliance
// domains to a ZoneComposition, pinning the packs that back it.
type JurisdictionLayer struct {
	JurisdictionID string
	Domains        []compliance.Domain
	Lawpacks       []LawpackRef
	Regpacks       []RegpackRef
	Licensepacks   []LicensepackRef
}

// validate returns the error messages for this layer's own contract
// (id format, domain count, digest well-formedness). Cross-layer
// conflicts are checked at the ZoneComposition level.
func (l JurisdictionLayer) validate() []string {
	var errs []string
	if !jurisdictionIDPattern.MatchString(l.JurisdictionID) {
		errs = append(errs, fmt.Sprintf("invalid jurisdiction_id format: %s", l.JurisdictionID))
	}
	if len(l.Domains) == 0 {
		errs = append(errs, fmt.Sprintf("layer %s has no domains", l.JurisdictionID))
	}
	for _, lp := range l.Lawpacks {
		if !digestHexPattern.MatchString(lp.LawpackDigestSHA256) {
			errs = append(errs, fmt.Sprintf("invalid lawpack digest: %s", lp.LawpackDigestSHA256))
		}
	}
	for _, rp := range l.Regpacks {
		if !digestHexPattern.MatchString(rp.RegpackDigestSHA256) {
			errs = append(errs, fmt.Sprintf("invalid regpack digest: %s", rp.RegpackDigestSHA256))
		}
	}
	for _, lcp := range l.Licensepacks {
		if !digestHexPattern.MatchString(lcp.LicensepackDigestSHA256) {
			errs = append(errs, fmt.Sprintf("invalid licensepack digest: %s", lcp.LicensepackDigestSHA256))
		}
	}
	return errs
}

// ArbitrationMode selects how a zone's disputes are adjudicated.
// Lifted from the original composition model
// (original_source/msez/crates/msez-pack/src/composition.rs's
// ArbitrationMode), which this core's dispute FSM (package dispute)
// consumes but does not itself select.
type ArbitrationMode string

const (
	Traditional  ArbitrationMode = "Traditional"
	AiAssisted   ArbitrationMode = "AiAssisted"
	AiAutonomous ArbitrationMode = "AiAutonomous"
	Hybrid       ArbitrationMode = "Hybrid"
)

// ArbitrationConfig is a zone's dispute-handling configuration: a
// dropped-feature supplement (SPEC_FULL.md §4.10) carried as metadata
// on ZoneComposition, outside CompositionDigest.
type ArbitrationConfig struct {
	Mode                    ArbitrationMode
	InstitutionID           string
	RulesVersion            string
	AIModel                 string
	HumanReviewThresholdUSD uint64
	AppealAllowed           bool
	MaxClaimUSD             uint64
}

// CorridorConfig is a settlement corridor's configuration within a
// composed zone: a dropped-feature supplement (SPEC_FULL.md §4.10)
// carried as metadata on ZoneComposition, outside CompositionDigest.
type CorridorConfig struct {
	CorridorID          string
	SourceJurisdiction  string
	TargetJurisdiction  string
	SettlementCurrency  string
	SettlementMechanism string
	MaxSettlementUSD    uint64
	FinalitySeconds     uint64
}

// ZoneComposition is an ordered set of jurisdiction layers forming one
// deployment, plus the zone's optional arbitration configuration and
// settlement corridors.
type ZoneComposition struct {
	ZoneID      string
	Name        string
	Layers      []JurisdictionLayer
	Arbitration *ArbitrationConfig
	Corridors   []CorridorConfig
}

// Validate checks zone ID format, each layer's own contract, and that
// no compliance domain is claimed by more than one layer. Conflicting
// domains are reported with every claiming layer's jurisdiction ID.
func (z ZoneComposition) Validate() []string {
	var errs []string
	if z.ZoneID == "" {
		errs = append(errs, "invalid zone_id: empty")
	}

	for _, layer := range z.Layers {
		errs = append(errs, layer.validate()...)
	}

	for _, corridor := range z.Corridors {
		if corridor.CorridorID == "" {
			errs = append(errs, "invalid corridor: empty corridor_id")
		}
	}

	sources := make(map[compliance.Domain][]string)
	for _, layer := range z.Layers {
		for _, domain := range layer.Domains {
			sources[domain] = append(sources[domain], layer.JurisdictionID)
		}
	}

	var conflictedDomains []compliance.Domain
	for domain, srcs := range sources {
		if len(srcs) > 1 {
			conflictedDomains = append(conflictedDomains, domain)
		}
	}
	sort.Slice(conflictedDomains, func(i, j int) bool { return conflictedDomains[i] < conflictedDomains[j] })

	for _, domain := range conflictedDomains {
		srcs := sources[domain]
		sort.Strings(srcs)
		errs = append(errs, fmt.Sprintf("domain conflict: %s provided by multiple layers: %v", domain, srcs))
	}

	return errs
}

// compositionLayerView is the canonicalization-ready shape of one
// layer contributing to the composition digest: only jurisdiction_id
// and its sorted domain names feed the digest, per spec.md §4.10.
type compositionLayerView struct {
	JurisdictionID string   `json:"jurisdiction_id"`
	Domains        []string `json:"domains"`
}

// CompositionDigest computes H(canonical({zone_id, layers sorted by
// jurisdiction_id, each layer's domains sorted by name})). It is
// deterministic across layer and domain reorderings (P-COMPOSITION).
func (z ZoneComposition) CompositionDigest() (canon.Digest, error) {
	layers := make([]compositionLayerView, len(z.Layers))
	for i, layer := range z.Layers {
		domains := make([]string, len(layer.Domains))
		for j, d := range layer.Domains {
			domains[j] = string(d)
		}
		sort.Strings(domains)
		layers[i] = compositionLayerView{JurisdictionID: layer.JurisdictionID, Domains: domains}
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i].JurisdictionID < layers[j].JurisdictionID })

	payload := map[string]any{
		"zone_id": z.ZoneID,
		"layers":  layers,
	}
	return canon.DigestValue(payload)
}
