// Package cache implements a fixed-capacity, open-addressed map from
// byte-string keys to uint32 counts, with an embedded doubly-linked list
// over the slot array giving LRU order for free.
package cache

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

const unlinked = -1

// node is one cell of the backing array. Real slots occupy indices
// [0, capacity); the two sentinels occupy capacity and capacity+1.
//
// A slot is free when prev and next are both unlinked and erased is false,
// live when prev and next are both set, and a tombstone when prev and next
// are both unlinked and erased is true. Tombstones look unoccupied to the
// list but must still block probe termination in get/remove.
type node struct {
	key    []byte
	value  uint32
	prev   int32
	next   int32
	erased bool
}

// Map is a fixed-capacity, open-addressed slot table with linear probing
// and an embedded LRU list. The zero value is not usable; construct with
// New.
type Map struct {
	nodes    []node
	capacity int32
	head     int32
	tail     int32
	live     int
}

// New returns a Map with capacity N. N is fixed for the lifetime of the
// map; there is no rehashing.
func New(capacity int) *Map {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	n := int32(capacity)
	m := &Map{
		nodes:    make([]node, n+2),
		capacity: n,
		head:     n,
		tail:     n + 1,
	}
	for i := range m.nodes {
		m.nodes[i].prev = unlinked
		m.nodes[i].next = unlinked
	}
	m.nodes[m.head].next = m.tail
	m.nodes[m.tail].prev = m.head
	return m
}

// Cap returns N, the map's fixed capacity.
func (m *Map) Cap() int {
	return int(m.capacity)
}

// Len returns the number of live entries currently in the map.
func (m *Map) Len() int {
	return m.live
}

// Hash returns the deterministic probe index xxhash would assign key,
// exposed for diagnostic use.
func (m *Map) Hash(key []byte) uint32 {
	return uint32(m.indexFor(key))
}

func (m *Map) indexFor(key []byte) int32 {
	return int32(xxhash.Sum64(key) % uint64(m.capacity))
}

func (m *Map) isLive(i int32) bool {
	return m.nodes[i].prev != unlinked && m.nodes[i].next != unlinked
}

// Insert stores value under key, overwriting and touching an existing
// entry if one matches. It remembers the first tombstone encountered
// while probing and reuses it only once the key is confirmed absent,
// rather than claiming the first non-live slot outright — the latter
// can duplicate a key that was removed and later re-inserted behind a
// surviving tombstone. Returns false only when the table is full.
func (m *Map) Insert(key []byte, value uint32) bool {
	h0 := m.indexFor(key)
	idx := h0
	tombstone := int32(unlinked)

	for {
		switch {
		case m.isLive(idx):
			if bytes.Equal(m.nodes[idx].key, key) {
				m.nodes[idx].value = value
				m.touch(idx)
				return true
			}
		case m.nodes[idx].erased:
			if tombstone == unlinked {
				tombstone = idx
			}
		default:
			if tombstone != unlinked {
				idx = tombstone
			}
			m.claim(idx, key, value)
			return true
		}

		idx = (idx + 1) % m.capacity
		if idx == h0 {
			if tombstone != unlinked {
				m.claim(tombstone, key, value)
				return true
			}
			return false
		}
	}
}

// Get returns the value stored under key and touches the entry to the
// head of the LRU list. The boolean reports whether key was present.
func (m *Map) Get(key []byte) (uint32, bool) {
	idx := m.locate(key)
	if idx == unlinked {
		return 0, false
	}
	m.touch(idx)
	return m.nodes[idx].value, true
}

// Remove deletes key from the map, turning its slot into a tombstone.
// Returns false if key was not present.
func (m *Map) Remove(key []byte) bool {
	idx := m.locate(key)
	if idx == unlinked {
		return false
	}
	m.unlink(idx)
	m.nodes[idx].erased = true
	m.nodes[idx].key = nil
	m.nodes[idx].value = 0
	m.live--
	return true
}

// GetFirst returns the least-recently-touched entry, the one adjacent to
// the tail sentinel. It does not touch the entry.
func (m *Map) GetFirst() (key []byte, value uint32, ok bool) {
	idx := m.nodes[m.tail].prev
	if idx == m.head {
		return nil, 0, false
	}
	return m.nodes[idx].key, m.nodes[idx].value, true
}

// GetLast returns the most-recently-touched entry, the one adjacent to
// the head sentinel. It does not touch the entry.
func (m *Map) GetLast() (key []byte, value uint32, ok bool) {
	idx := m.nodes[m.head].next
	if idx == m.tail {
		return nil, 0, false
	}
	return m.nodes[idx].key, m.nodes[idx].value, true
}

// ForEach walks the map in LRU order, most-recently-touched first,
// calling fn for each live entry. It stops early if fn returns false.
// The key slice passed to fn is owned by the map and must not be
// retained past the call.
func (m *Map) ForEach(fn func(key []byte, value uint32) bool) {
	for idx := m.nodes[m.head].next; idx != m.tail; idx = m.nodes[idx].next {
		if !fn(m.nodes[idx].key, m.nodes[idx].value) {
			return
		}
	}
}

// locate returns the index holding key, or unlinked if key is absent.
// Walks exactly as get does: a non-live, non-tombstone slot terminates
// the chain.
func (m *Map) locate(key []byte) int32 {
	h0 := m.indexFor(key)
	idx := h0

	if !m.isLive(idx) && !m.nodes[idx].erased {
		return unlinked
	}
	for !(m.isLive(idx) && bytes.Equal(m.nodes[idx].key, key)) {
		idx = (idx + 1) % m.capacity
		if idx == h0 || (!m.isLive(idx) && !m.nodes[idx].erased) {
			return unlinked
		}
	}
	return idx
}

// claim installs key/value into a free or tombstone slot and links it
// at the head of the LRU list.
func (m *Map) claim(idx int32, key []byte, value uint32) {
	m.nodes[idx].key = append([]byte(nil), key...)
	m.nodes[idx].value = value
	m.nodes[idx].erased = false
	m.linkAtHead(idx)
	m.live++
}

func (m *Map) touch(idx int32) {
	m.unlink(idx)
	m.linkAtHead(idx)
}

func (m *Map) unlink(i int32) {
	if m.nodes[i].prev == unlinked && m.nodes[i].next == unlinked {
		return
	}
	p := m.nodes[i].prev
	n := m.nodes[i].next
	m.nodes[p].next = n
	m.nodes[n].prev = p
	m.nodes[i].prev = unlinked
	m.nodes[i].next = unlinked
}

func (m *Map) linkAtHead(i int32) {
	old := m.nodes[m.head].next
	m.nodes[m.head].next = i
	m.nodes[i].next = old
	m.nodes[old].prev = i
	m.nodes[i].prev = m.head
}
