// Package pkg provides core types and structures for the relink reference engine.
// The engine manages record spaces (stores) and ordered row-reference lists
// (link lists) entirely in memory; persistence belongs to the native librl4
// engine used by the CGO backend.
package pkg

import (
	"os"
	"time"
)

// Constants matching librl4 definitions
const (
	// Status codes (matching C definitions)
	ErrorNone    = 0
	ErrorMemory  = -910  // nil or unallocated structure
	ErrorHandle  = -1010 // invalid, unknown, or destroyed handle
	ErrorBounds  = -1020 // row or element index out of range
	ErrorState   = -1030 // operation refused in current store state
	ErrorDestroy = -1040 // release of an already-released object
	ErrorFault   = -1050 // recovered native fault

	// Handle values
	Handle4None = 0 // never a live handle

	// Find result
	Link4NotFound = -1
)

// Core4 represents the engine context (from RL4CORE in librl4).
// Every engine object holds a back-pointer to its Core4; the context is
// always explicit, never ambient or thread-local.
type Core4 struct {
	// Documented members
	Safety bool  // Refuse destructive operations on read-only stores
	Log    int16 // Error logging enabled

	// Internal members
	Initialized bool     // Initialization flag
	ErrorCode   int      // Last error code
	ErrorLog    *os.File // Error log file
	Stores      []*Store4
	LinkCount   int // Live link lists created through this context
}

// Store4 represents a record space a link list points into (from RL4STORE in C).
// Rows are identified by position; the store tracks only the count of live
// rows, which bounds the row indices a link list may reference.
type Store4 struct {
	Core     *Core4
	RecCount uint64
	ReadOnly bool
	IsValid  bool
}

// LinkList4 represents an engine-managed ordered sequence of row references
// (from RL4LINKS in C). Valid flips to false on destroy; operations on a
// destroyed list report ErrorHandle rather than touching freed state.
type LinkList4 struct {
	Store *Store4
	Rows  []uint64
	Valid bool
}

// Error represents engine error information
type Error struct {
	Code        int
	Description string
	Op          string
	Time        time.Time
}
