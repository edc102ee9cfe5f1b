package watcher

import (
	"crypto/ed25519"
	"sync"
)

// Registry is the read-mostly set of registered watcher public keys.
// Per spec.md §5, updates occur via external rotation and are not in
// the hot path — reads are the common case and take a read lock.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PublicKey
}

// NewRegistry returns an empty watcher registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]ed25519.PublicKey)}
}

// Register adds or replaces the public key for watcherKeyHex.
func (r *Registry) Register(watcherKeyHex string, publicKey ed25519.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[watcherKeyHex] = publicKey
}

// Revoke removes watcherKeyHex from the registry.
func (r *Registry) Revoke(watcherKeyHex string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keys, watcherKeyHex)
}

// Lookup returns the registered public key for watcherKeyHex, if any.
func (r *Registry) Lookup(watcherKeyHex string) (ed25519.PublicKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[watcherKeyHex]
	return key, ok
}

// VerifiedCount counts the distinct registered watchers among
// attestations whose candidateRoot and signature both check out.
// Attestations failing registration, root match, or signature
// verification are silently dropped — per spec.md §4.4, they do not
// fail resolution, they just do not count. Duplicate attestations from
// the same watcher count once.
func (r *Registry) VerifiedCount(candidateRoot string, attestations []Attestation) int {
	seen := make(map[string]struct{})
	for _, a := range attestations {
		if a.CandidateRoot != candidateRoot {
			continue
		}
		key, ok := r.Lookup(a.WatcherKeyHex)
		if !ok {
			continue
		}
		if !Verify(key, a) {
			continue
		}
		seen[a.WatcherKeyHex] = struct{}{}
	}
	return len(seen)
}
