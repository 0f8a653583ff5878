// Package relink provides a Go binding layer for rldb record link lists with
// support for both CGO-based (librl4) and pure Go (gocore) engine backends
// via build tags.
//
// Build Tags:
//   - Default: Uses the pure Go reference engine (gocore)
//   - -tags relinkcgo: Uses the native librl4 engine via CGO
//
// A link list is an ordered, mutable sequence of references from one record
// to others, owned by the engine. The binding never owns engine state; each
// call dereferences the wrapped object for the duration of that call only
// and surfaces every engine fault as a structured *EngineFault instead of a
// panic or a native unwind.
//
// Basic usage:
//
//	s := relink.NewStore()
//	if err := s.Open(false); err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	s.AppendRows(10)
//	ll, _ := s.NewLinkList()
//	ll.Add(5)
//	ll.Add(7)
//	n, _ := ll.Size() // 2
//	ll.Destroy()
//
// Handle lifetime: Destroy releases the engine-side list exactly once.
// After Destroy the list is invalid; calling any operation on it is a
// contract violation. The engine reports it as a handle fault where it can,
// but callers must not rely on that and must not reuse destroyed lists.
//
// Concurrency: every operation is a synchronous call on the caller's
// goroutine. The binding takes no per-object locks; callers serialize
// access to a Store or LinkList themselves or rely on the engine's own
// concurrency control. This is an explicit dependency contract with the
// engine, not something this layer enforces.
package relink

import "fmt"

// Backend represents the implementation backend type
type Backend int

const (
	BackendPureGo Backend = iota // Default: Pure Go reference engine (gocore)
	BackendCGO                   // CGO engine (librl4)
)

// String returns the backend name
func (b Backend) String() string {
	switch b {
	case BackendPureGo:
		return "Pure Go (gocore)"
	case BackendCGO:
		return "CGO (librl4)"
	default:
		return "Unknown"
	}
}

// LinkNotFound is returned by Find when the list holds no reference to the
// requested row.
const LinkNotFound int64 = -1

// Engine status codes shared by both backends (mirroring rl4.h).
const (
	codeNone    = 0
	codeMemory  = -910
	codeHandle  = -1010
	codeBounds  = -1020
	codeState   = -1030
	codeDestroy = -1040
	codeFault   = -1050
)

// FaultCategory classifies an EngineFault.
type FaultCategory int

const (
	FaultUnknown FaultCategory = iota
	FaultMemory                // nil or unallocated structure
	FaultHandle                // invalid or destroyed handle
	FaultBounds                // row or element index out of range
	FaultState                 // operation refused in current store state
	FaultDestroy               // object already released
	FaultPanic                 // native fault captured at the boundary
)

// String returns the category name
func (c FaultCategory) String() string {
	switch c {
	case FaultMemory:
		return "memory"
	case FaultHandle:
		return "handle"
	case FaultBounds:
		return "bounds"
	case FaultState:
		return "state"
	case FaultDestroy:
		return "destroy"
	case FaultPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// EngineFault is the single externally visible error kind of the binding.
// It carries the engine's status code plus whatever diagnostic detail the
// fault produced. All operations return *EngineFault on failure; no engine
// fault is ever allowed to propagate as a panic out of this package.
type EngineFault struct {
	Op       string
	Category FaultCategory
	Code     int
	Message  string
}

// Error implements the error interface.
func (e *EngineFault) Error() string {
	return fmt.Sprintf("relink: %s: %s fault (%d): %s", e.Op, e.Category, e.Code, e.Message)
}

// newEngineFault builds an EngineFault from an engine status code.
func newEngineFault(op string, code int, message string) *EngineFault {
	category := FaultUnknown
	switch code {
	case codeMemory:
		category = FaultMemory
	case codeHandle:
		category = FaultHandle
	case codeBounds:
		category = FaultBounds
	case codeState:
		category = FaultState
	case codeDestroy:
		category = FaultDestroy
	case codeFault:
		category = FaultPanic
	}
	return &EngineFault{Op: op, Category: category, Code: code, Message: message}
}

// Store represents a connection to an engine record space with automatic
// backend selection. The implementation is chosen at compile time via build
// tags:
//   - Default build: pure Go reference engine (gocore)
//   - Build with -tags relinkcgo: native librl4 engine
//
// All operations require an active store (Open() called successfully).
// Create instances using the NewStore() function.
type Store struct {
	impl storeImpl
}

// storeImpl defines the internal interface that both backends must implement
type storeImpl interface {
	Open(readOnly bool) error
	Close() error
	Active() bool

	AppendRows(count uint64) error
	RecCount() (uint64, error)
	ReadOnlySet(readOnly bool) error

	NewLinkList() (linkListImpl, error)

	Backend() Backend
}

// linkListImpl defines the internal interface both backends implement for a
// single engine-owned link list.
type linkListImpl interface {
	Add(rowNdx uint64) error
	Insert(insNdx, rowNdx uint64) error
	Erase(ndx uint64) error
	Clear() error
	Get(ndx uint64) (uint64, error)
	Size() (uint64, error)
	Find(rowNdx uint64) (int64, error)
	Destroy() error
	Valid() bool

	Backend() Backend
}

// Open opens the record space. With readOnly set, mutating operations on
// the store and on its link lists report a state fault.
func (s *Store) Open(readOnly bool) error {
	return s.impl.Open(readOnly)
}

// Close closes the record space and invalidates every link list pointing
// into it. After Close() the Store can be reused by calling Open() again.
func (s *Store) Close() error {
	return s.impl.Close()
}

// Active reports whether the store is open and ready for use.
func (s *Store) Active() bool {
	return s.impl.Active()
}

// AppendRows grows the record space by count rows.
func (s *Store) AppendRows(count uint64) error {
	return s.impl.AppendRows(count)
}

// RecCount returns the number of rows in the record space.
func (s *Store) RecCount() (uint64, error) {
	return s.impl.RecCount()
}

// ReadOnlySet changes the store's read-only state.
func (s *Store) ReadOnlySet(readOnly bool) error {
	return s.impl.ReadOnlySet(readOnly)
}

// NewLinkList creates an empty link list pointing into this store.
func (s *Store) NewLinkList() (*LinkList, error) {
	impl, err := s.impl.NewLinkList()
	if err != nil {
		return nil, err
	}
	return &LinkList{impl: impl}, nil
}

// Backend returns information about which backend implementation is in use.
func (s *Store) Backend() Backend {
	return s.impl.Backend()
}

// LinkList represents an engine-owned ordered sequence of row references.
// Obtain instances from Store.NewLinkList.
type LinkList struct {
	impl linkListImpl
}

// Add appends a reference to the record at rowNdx to the end of the list.
func (l *LinkList) Add(rowNdx uint64) error {
	return l.impl.Add(rowNdx)
}

// Insert inserts a reference to the record at rowNdx before position
// insNdx. insNdx may equal Size(), which appends.
func (l *LinkList) Insert(insNdx, rowNdx uint64) error {
	return l.impl.Insert(insNdx, rowNdx)
}

// Erase removes the reference at position ndx. The referenced record itself
// is untouched.
func (l *LinkList) Erase(ndx uint64) error {
	return l.impl.Erase(ndx)
}

// Clear removes every reference from the list.
func (l *LinkList) Clear() error {
	return l.impl.Clear()
}

// Get returns the row index referenced at position ndx.
func (l *LinkList) Get(ndx uint64) (uint64, error) {
	return l.impl.Get(ndx)
}

// Size returns the current element count of the list.
func (l *LinkList) Size() (uint64, error) {
	return l.impl.Size()
}

// Find returns the position of the first reference to rowNdx, or
// LinkNotFound when the list holds no reference to that row.
func (l *LinkList) Find(rowNdx uint64) (int64, error) {
	return l.impl.Find(rowNdx)
}

// Destroy releases the engine-side list. The list must be destroyed exactly
// once; after Destroy it is invalid and must not be reused. Operating on a
// destroyed list is a contract violation which the engine reports as a
// handle fault where it can.
func (l *LinkList) Destroy() error {
	return l.impl.Destroy()
}

// Valid reports whether the list is still live.
func (l *LinkList) Valid() bool {
	return l.impl.Valid()
}

// Backend returns information about which backend implementation is in use.
func (l *LinkList) Backend() Backend {
	return l.impl.Backend()
}

// =========================================================================
// MUST VARIANTS - Panic instead of returning errors
// =========================================================================

// MustOpen opens the record space, panicking on error
func (s *Store) MustOpen(readOnly bool) {
	if err := s.Open(readOnly); err != nil {
		panic(err)
	}
}

// MustAppendRows grows the record space, panicking on error
func (s *Store) MustAppendRows(count uint64) {
	if err := s.AppendRows(count); err != nil {
		panic(err)
	}
}

// MustRecCount returns the row count, panicking on error
func (s *Store) MustRecCount() uint64 {
	count, err := s.RecCount()
	if err != nil {
		panic(err)
	}
	return count
}

// MustNewLinkList creates a link list, panicking on error
func (s *Store) MustNewLinkList() *LinkList {
	links, err := s.NewLinkList()
	if err != nil {
		panic(err)
	}
	return links
}

// MustAdd appends a row reference, panicking on error
func (l *LinkList) MustAdd(rowNdx uint64) {
	if err := l.Add(rowNdx); err != nil {
		panic(err)
	}
}

// MustInsert inserts a row reference, panicking on error
func (l *LinkList) MustInsert(insNdx, rowNdx uint64) {
	if err := l.Insert(insNdx, rowNdx); err != nil {
		panic(err)
	}
}

// MustErase removes the reference at ndx, panicking on error
func (l *LinkList) MustErase(ndx uint64) {
	if err := l.Erase(ndx); err != nil {
		panic(err)
	}
}

// MustGet returns the row referenced at ndx, panicking on error
func (l *LinkList) MustGet(ndx uint64) uint64 {
	row, err := l.Get(ndx)
	if err != nil {
		panic(err)
	}
	return row
}

// MustSize returns the element count, panicking on error
func (l *LinkList) MustSize() uint64 {
	size, err := l.Size()
	if err != nil {
		panic(err)
	}
	return size
}

// MustFind returns the position of rowNdx, panicking on error
func (l *LinkList) MustFind(rowNdx uint64) int64 {
	pos, err := l.Find(rowNdx)
	if err != nil {
		panic(err)
	}
	return pos
}

// MustDestroy releases the list, panicking on error
func (l *LinkList) MustDestroy() {
	if err := l.Destroy(); err != nil {
		panic(err)
	}
}
