// Package corridorerr defines the typed error taxonomy shared across
// corridor-core packages: a Kind enum and an Error wrapper so callers
// can classify a failure (for a transport layer to map to a status
// code) without losing the ability to errors.Is/errors.As against the
// specific sentinel that caused it.
package corridorerr
