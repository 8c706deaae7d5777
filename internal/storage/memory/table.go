// Package memory provides an in-process keyed table used as the inventory store.
package memory

import (
	"errors"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrKeyExists   = errors.New("key already exists")
)

// Table is a keyed collection safe for concurrent use. List returns rows in
// insertion order.
type Table[K comparable, V any] struct {
	mu   sync.RWMutex
	rows map[K]V
	keys []K
}

// NewTable creates an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		rows: make(map[K]V),
	}
}

func (t *Table[K, V]) Insert(key K, value V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; ok {
		return ErrKeyExists
	}
	t.rows[key] = value
	t.keys = append(t.keys, key)
	return nil
}

func (t *Table[K, V]) Update(key K, value V) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return ErrKeyNotFound
	}
	t.rows[key] = value
	return nil
}

func (t *Table[K, V]) Get(key K) (V, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.rows[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return value, nil
}

func (t *Table[K, V]) Delete(key K) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return ErrKeyNotFound
	}
	delete(t.rows, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Table[K, V]) List() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	values := make([]V, 0, len(t.keys))
	for _, k := range t.keys {
		values = append(values, t.rows[k])
	}
	return values
}
