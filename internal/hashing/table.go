package hashing

import (
	"sync"
	"sync/atomic"
)

type tableKey struct {
	key   uint64
	depth int
}

// Table caches perft node counts by position key and depth. It is safe for
// concurrent use by the parallel divide workers.
type Table struct {
	mu          sync.RWMutex
	entries     map[tableKey]int64
	maxCapacity int // 0 = unlimited
	hits        atomic.Int64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity; once
// full, new counts are dropped and existing ones still served.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[tableKey]int64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached count for key at depth.
func (t *Table) Lookup(key uint64, depth int) (int64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[tableKey{key, depth}]
	t.mu.RUnlock()
	if ok {
		t.hits.Add(1)
	}
	return nodes, ok
}

// Store records a count unless the table is full.
func (t *Table) Store(key uint64, depth int, nodes int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity {
		return
	}
	t.entries[tableKey{key, depth}] = nodes
}

// Len returns the number of cached counts.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity.
func (t *Table) IsFull() bool {
	if t.maxCapacity == 0 {
		return false
	}
	return t.Len() >= t.maxCapacity
}

// Hits returns how many lookups found a count.
func (t *Table) Hits() int64 {
	return t.hits.Load()
}
