package fuzzy

import (
	"container/list"
	"sync"
)

// defaultMemoSize bounds the per-matcher memo. Generous enough that a
// single invocation never evicts; the bound only guards long-lived
// embedders feeding unbounded distinct pairs.
const defaultMemoSize = 4096

// memoKey identifies one memoized comparison. Keys are exact (query, text)
// pairs; no normalization happens at this layer.
type memoKey struct {
	query string
	text  string
}

// memo is an LRU map of match results, private to one Matcher.
// It is safe for concurrent use.
type memo struct {
	mu      sync.Mutex
	maxSize int
	entries map[memoKey]*list.Element
	lru     *list.List
}

// memoEntry holds one cached result.
type memoEntry struct {
	key    memoKey
	result Result
}

// newMemo creates a memo bounded to maxSize entries.
func newMemo(maxSize int) *memo {
	if maxSize <= 0 {
		maxSize = defaultMemoSize
	}
	return &memo{
		maxSize: maxSize,
		entries: make(map[memoKey]*list.Element),
		lru:     list.New(),
	}
}

// get retrieves a cached result.
func (m *memo) get(query, text string) (Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[memoKey{query, text}]
	if !ok {
		return Result{}, false
	}
	m.lru.MoveToFront(elem)
	return elem.Value.(*memoEntry).result, true
}

// put stores a result, evicting the least recently used entry at capacity.
func (m *memo) put(query, text string, r Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoKey{query, text}
	if elem, ok := m.entries[key]; ok {
		m.lru.MoveToFront(elem)
		elem.Value.(*memoEntry).result = r
		return
	}

	if m.lru.Len() >= m.maxSize {
		if oldest := m.lru.Back(); oldest != nil {
			m.lru.Remove(oldest)
			delete(m.entries, oldest.Value.(*memoEntry).key)
		}
	}

	m.entries[key] = m.lru.PushFront(&memoEntry{key: key, result: r})
}

// len returns the number of memoized pairs.
func (m *memo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}
