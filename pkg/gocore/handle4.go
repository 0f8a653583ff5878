// Package pkg - RL4HANDLE functions
// Process-wide registry mapping opaque integer handles to live engine
// objects. Raw Go pointers must never cross the C boundary, so the export
// layer hands out registry keys instead. Handle value 0 is never issued.
package pkg

import "sync"

type handle4Table struct {
	mu     sync.Mutex
	next   uint64
	links  map[uint64]*LinkList4
	stores map[uint64]*Store4
}

var handle4 = handle4Table{
	next:   1,
	links:  make(map[uint64]*LinkList4),
	stores: make(map[uint64]*Store4),
}

// Handle4NewLink registers a link list and returns its handle.
// Returns Handle4None for a nil list.
func Handle4NewLink(links *LinkList4) uint64 {
	if links == nil {
		return Handle4None
	}

	handle4.mu.Lock()
	defer handle4.mu.Unlock()

	h := handle4.next
	handle4.next++
	handle4.links[h] = links
	return h
}

// Handle4NewStore registers a store and returns its handle.
// Returns Handle4None for a nil store.
func Handle4NewStore(store *Store4) uint64 {
	if store == nil {
		return Handle4None
	}

	handle4.mu.Lock()
	defer handle4.mu.Unlock()

	h := handle4.next
	handle4.next++
	handle4.stores[h] = store
	return h
}

// Handle4Link resolves a link list handle. Returns nil for Handle4None,
// an unknown handle, or a handle that was freed.
func Handle4Link(h uint64) *LinkList4 {
	handle4.mu.Lock()
	defer handle4.mu.Unlock()
	return handle4.links[h]
}

// Handle4Store resolves a store handle. Returns nil for Handle4None,
// an unknown handle, or a handle that was freed.
func Handle4Store(h uint64) *Store4 {
	handle4.mu.Lock()
	defer handle4.mu.Unlock()
	return handle4.stores[h]
}

// Handle4Free removes a handle of either kind from the registry.
// Returns true when the handle was live. The underlying object is not
// touched; destroy/close is the caller's step.
func Handle4Free(h uint64) bool {
	handle4.mu.Lock()
	defer handle4.mu.Unlock()

	if _, ok := handle4.links[h]; ok {
		delete(handle4.links, h)
		return true
	}
	if _, ok := handle4.stores[h]; ok {
		delete(handle4.stores, h)
		return true
	}
	return false
}

// Handle4Count returns the number of live handles of both kinds.
func Handle4Count() int {
	handle4.mu.Lock()
	defer handle4.mu.Unlock()
	return len(handle4.links) + len(handle4.stores)
}
