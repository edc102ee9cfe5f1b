// Package fork implements Byzantine fault-tolerant fork resolution
// between two candidate branches of a receipt chain: equivocation
// detection, clock-skew bounds, and the three-level ordering that
// picks a winner when neither is rejected outright (spec.md §4.4).
package fork
