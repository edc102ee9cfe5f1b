package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter[K comparable, V any] struct {
	mu     sync.Mutex
	writes []K
	fail   bool
}

func (w *recordingWriter[K, V]) Write(id K, value V) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("durable write failed")
	}
	w.writes = append(w.writes, id)
	return nil
}

func TestInsertGetRemove(t *testing.T) {
	m := NewMap[string, int](nil)
	require.NoError(t, m.Insert("a", 1))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	removed, ok := m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, removed)

	_, ok = m.Get("a")
	assert.False(t, ok)
}

func TestUpdateAppliesUnderExclusiveAccess(t *testing.T) {
	m := NewMap[string, int](nil)
	require.NoError(t, m.Insert("a", 1))

	v, ok := m.Update("a", func(n *int) { *n += 10 })
	require.True(t, ok)
	assert.Equal(t, 11, v)
}

func TestTryUpdateLeavesValueUnchangedOnError(t *testing.T) {
	m := NewMap[string, int](nil)
	require.NoError(t, m.Insert("a", 1))

	ok, err := m.TryUpdate("a", func(n *int) error {
		*n = 99
		return errors.New("boom")
	})
	require.True(t, ok)
	require.Error(t, err)

	v, _ := m.Get("a")
	assert.Equal(t, 1, v)
}

func TestDurableWriteFailurePreservesInMemoryValue(t *testing.T) {
	writer := &recordingWriter[string, int]{fail: true}
	m := NewMap[string, int](writer)

	err := m.Insert("a", 1)
	assert.Error(t, err)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestConcurrentInsertsAreSafe(t *testing.T) {
	m := NewMap[int, int](nil)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.Insert(i, i*2)
		}(i)
	}
	wg.Wait()
	assert.Len(t, m.List(), 100)
}
