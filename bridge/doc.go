// Package bridge implements corridor routing between jurisdictions:
// a symmetric graph built from Active corridors, and Dijkstra
// shortest-path search minimizing fee, then settlement time
// (spec.md §3.8, §4.7).
package bridge
