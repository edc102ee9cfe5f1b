// Package netting implements bilateral and multilateral obligation
// netting: accumulating per-party, per-currency net positions and
// producing a minimal set of settlement legs via greedy surplus/deficit
// matching (spec.md §3.7, §4.6).
package netting
