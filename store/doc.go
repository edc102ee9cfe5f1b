// Package store implements a generic concurrent primitive store: one
// Map[K,V] instance per primitive kind (organization, treasury,
// account, transaction, tax event, consent, cap table, investment,
// submission, template), each independently lockable (spec.md §4.11,
// §5).
package store
