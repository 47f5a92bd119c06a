package chain

import (
	"sync"

	"github.com/katalvlaran/keypadchain/keypad"
)

// MemoKey identifies one press of To by an arm resting on From, Layers
// keypads away from the human.
type MemoKey struct {
	Layers   int
	From, To keypad.Symbol
}

// Memo caches transition costs. Entries are never invalidated; the first
// value stored for a key wins. Safe for concurrent use.
type Memo struct {
	mu      sync.RWMutex
	entries map[MemoKey]uint64
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[MemoKey]uint64)}
}

// Get returns the cached cost for k.
func (m *Memo) Get(k MemoKey) (uint64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[k]
	return v, ok
}

// Put stores cost for k unless k is already present, and returns the value
// held for k afterwards. Two goroutines computing the same key race only to
// produce the same number.
func (m *Memo) Put(k MemoKey, cost uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[k]; ok {
		return v
	}
	m.entries[k] = cost
	return cost
}

// Len returns the number of cached transitions.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
