// Package dispute implements the cross-jurisdiction dispute lifecycle
// as a finite state machine: a linear main track with two terminal
// side-branches, an append-only transition log, and typed evidence
// digests on every transition (spec.md §4.9).
package dispute
