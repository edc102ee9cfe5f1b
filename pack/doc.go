// Package pack implements content-addressed lawpack/regpack/licensepack
// references and zone composition: an ordered set of jurisdiction
// layers, each claiming a disjoint subset of the compliance domains,
// validated and reduced to a deterministic composition digest
// (spec.md §4.10).
package pack
