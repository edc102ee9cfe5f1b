// Package compliance implements the 20-domain compliance tensor: a
// fixed lattice of regulatory domains, each holding a four-state
// compliance level, with pointwise meet for merging tensors across
// zones or sub-jurisdictions (spec.md §3.6, §4.5).
package compliance
