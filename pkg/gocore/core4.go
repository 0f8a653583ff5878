// Package pkg - RL4CORE functions
// Engine context lifecycle and error reporting
package pkg

import (
	"fmt"
	"os"
	"time"
)

// Core4Init initializes a Core4 structure with default settings.
//
// The function sets up default values for engine access including:
// - Safety checks enabled
// - Error logging disabled
// - An empty store list
//
// Returns ErrorNone on success, ErrorMemory if core is nil.
func Core4Init(core *Core4) int {
	if core == nil {
		return ErrorMemory
	}

	core.Safety = true
	core.Log = 0

	core.Initialized = true
	core.ErrorCode = ErrorNone
	core.Stores = nil
	core.LinkCount = 0

	return ErrorNone
}

// Core4InitUndo cleans up and releases resources from a Core4 structure.
//
// The function closes all open stores and resets the context to an
// uninitialized state. It's safe to call multiple times.
//
// Returns ErrorNone on success.
func Core4InitUndo(core *Core4) int {
	if core == nil || !core.Initialized {
		return ErrorNone
	}

	Core4Close(core)

	core.Initialized = false
	core.ErrorCode = ErrorNone

	if core.ErrorLog != nil {
		core.ErrorLog.Close()
		core.ErrorLog = nil
	}

	return ErrorNone
}

// Core4Close closes all open stores associated with a Core4 structure.
// Link lists pointing into a closed store become invalid; subsequent
// operations on them report ErrorHandle.
//
// Returns ErrorNone on success, ErrorMemory if core is nil.
func Core4Close(core *Core4) int {
	if core == nil {
		return ErrorMemory
	}

	for _, store := range core.Stores {
		if store != nil {
			store.IsValid = false
		}
	}
	core.Stores = nil

	core.ErrorCode = ErrorNone
	return ErrorNone
}

// Core4LogOpen opens an error log file on the context and enables logging.
// Engine faults are appended to the log as they are reported.
//
// Returns ErrorNone on success, ErrorMemory for a nil core or open failure.
func Core4LogOpen(core *Core4, fileName string) int {
	if core == nil || fileName == "" {
		return ErrorMemory
	}

	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return setError(core, nil, ErrorMemory, "core4logOpen")
	}

	if core.ErrorLog != nil {
		core.ErrorLog.Close()
	}
	core.ErrorLog = f
	core.Log = 1

	return ErrorNone
}

// Core4Error returns the last error recorded on the context as a structured
// Error, or a zero Error when no fault has occurred.
func Core4Error(core *Core4) Error {
	if core == nil || core.ErrorCode == ErrorNone {
		return Error{}
	}
	return Error{
		Code:        core.ErrorCode,
		Description: ErrorDescription(core.ErrorCode),
		Time:        time.Now(),
	}
}

// ErrorDescription returns the diagnostic text for an engine status code.
func ErrorDescription(code int) string {
	switch code {
	case ErrorNone:
		return "no error"
	case ErrorMemory:
		return "nil or unallocated structure"
	case ErrorHandle:
		return "invalid or destroyed handle"
	case ErrorBounds:
		return "index out of range"
	case ErrorState:
		return "operation refused in current store state"
	case ErrorDestroy:
		return "object already released"
	case ErrorFault:
		return "recovered engine fault"
	default:
		return fmt.Sprintf("unknown engine error %d", code)
	}
}

// setError records an error code on the context and writes it to the error
// log when logging is enabled. The code is returned unchanged so call sites
// can report and return in one statement.
func setError(core *Core4, store *Store4, code int, op string) int {
	if core == nil && store != nil {
		core = store.Core
	}
	if core == nil {
		return code
	}

	core.ErrorCode = code
	if code != ErrorNone && core.Log != 0 && core.ErrorLog != nil {
		fmt.Fprintf(core.ErrorLog, "%s %s: %d %s\n",
			time.Now().Format(time.RFC3339), op, code, ErrorDescription(code))
	}
	return code
}
