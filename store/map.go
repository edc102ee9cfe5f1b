package store

import (
	"sync"

	"github.com/mezcorridor/corridor-core/corridorerr"
)

// DurableWriter is the optional write-through sink a Map invokes
// synchronously after a successful mutation. Implementations might
// back onto a SQL row store or a content-addressed blob store; the
// Map itself is agnostic.
type DurableWriter[K comparable, V any] interface {
	Write(id K, value V) error
}

// Map is a concurrent-safe store of one primitive kind, keyed by id.
// All operations are safe for concurrent callers; each key is
// independently lockable in spirit, though this implementation uses a
// single RWMutex guarding the whole map — sufficient for §5's ordering
// guarantees since cross-key consistency is never promised.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	values  map[K]V
	durable DurableWriter[K, V]
}

// NewMap returns an empty Map. durable may be nil to skip write-through.
func NewMap[K comparable, V any](durable DurableWriter[K, V]) *Map[K, V] {
	return &Map[K, V]{values: make(map[K]V), durable: durable}
}

// Insert stores value under id, then write-throughs to the durable
// sink if configured. A durable write failure is returned as an
// internal error; the in-memory value remains set — the caller is
// expected to retry or reconcile (§4.11).
func (m *Map[K, V]) Insert(id K, value V) error {
	m.mu.Lock()
	m.values[id] = value
	m.mu.Unlock()
	return m.writeThrough(id, value)
}

// Get returns a copy of the value stored under id, if any.
func (m *Map[K, V]) Get(id K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[id]
	return v, ok
}

// Update applies fn to the value under id under exclusive access and
// stores the result, returning the new value. Returns false if id is
// absent.
func (m *Map[K, V]) Update(id K, fn func(*V)) (V, bool) {
	m.mu.Lock()
	v, ok := m.values[id]
	if !ok {
		m.mu.Unlock()
		var zero V
		return zero, false
	}
	fn(&v)
	m.values[id] = v
	m.mu.Unlock()

	_ = m.writeThrough(id, v)
	return v, true
}

// TryUpdate applies fn to a copy of the value under id under exclusive
// access. If fn returns an error, the stored value is left unmodified
// and the error is returned; nothing is written through. Returns
// ok=false if id is absent.
func (m *Map[K, V]) TryUpdate(id K, fn func(*V) error) (ok bool, err error) {
	m.mu.Lock()
	v, present := m.values[id]
	if !present {
		m.mu.Unlock()
		return false, nil
	}
	if err := fn(&v); err != nil {
		m.mu.Unlock()
		return true, err
	}
	m.values[id] = v
	m.mu.Unlock()

	return true, m.writeThrough(id, v)
}

// Remove deletes id, returning the value that was stored, if any.
func (m *Map[K, V]) Remove(id K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[id]
	if ok {
		delete(m.values, id)
	}
	return v, ok
}

// List returns every stored value, in no particular order.
func (m *Map[K, V]) List() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]V, 0, len(m.values))
	for _, v := range m.values {
		out = append(out, v)
	}
	return out
}

func (m *Map[K, V]) writeThrough(id K, value V) error {
	if m.durable == nil {
		return nil
	}
	if err := m.durable.Write(id, value); err != nil {
		return corridorerr.Wrapf(corridorerr.Internal, "store: durable write: %w", err)
	}
	return nil
}
