// Command librelink builds the relink boundary as a C shared library for
// consumption by foreign runtimes (build with: mage buildshared, or
// go build -buildmode=c-shared).
//
// The exported surface is flat C-linkage functions taking primitive and
// opaque-handle arguments only. Handles are opaque uint64 registry keys,
// never Go pointers. Every export returns an int32 status code; 0 is
// success, negative values are engine status codes, and diagnostic detail
// is available out-of-band through relink_last_error.
//
// Every export body runs inside the uniform fault-capturing scope: a fault
// raised by the engine is stopped at this boundary and translated to a
// status code. No Go panic ever unwinds into the caller's runtime.
//
// Handle lifetime: linklist_destroy and relink_store_free release their
// object exactly once. Calling any operation on a freed handle is a
// contract violation; the registry reports it as a handle fault instead of
// dereferencing freed state.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"
import (
	"github.com/mkfoss/relink/internal/boundary"
	pkg "github.com/mkfoss/relink/pkg/gocore"
)

// relink_open opens a record space and returns its handle, or 0 on fault.
//
//export relink_open
func relink_open(readOnly C.int32_t) C.uint64_t {
	var h uint64
	boundary.Capture("relink_open", func() int {
		core := &pkg.Core4{}
		if code := pkg.Core4Init(core); code != pkg.ErrorNone {
			return code
		}
		store := pkg.Store4Open(core, readOnly != 0)
		if store == nil {
			return pkg.ErrorMemory
		}
		h = pkg.Handle4NewStore(store)
		return pkg.ErrorNone
	})
	return C.uint64_t(h)
}

// relink_store_append_rows grows the record space by count rows.
//
//export relink_store_append_rows
func relink_store_append_rows(storeHandle C.uint64_t, count C.size_t) C.int32_t {
	status := boundary.Capture("relink_store_append_rows", func() int {
		store := pkg.Handle4Store(uint64(storeHandle))
		return pkg.Store4AppendRows(store, uint64(count))
	})
	return C.int32_t(status)
}

// relink_store_rec_count writes the store's row count to out.
//
//export relink_store_rec_count
func relink_store_rec_count(storeHandle C.uint64_t, out *C.size_t) C.int32_t {
	status := boundary.Capture("relink_store_rec_count", func() int {
		if out == nil {
			return pkg.ErrorMemory
		}
		store := pkg.Handle4Store(uint64(storeHandle))
		count, code := pkg.Store4RecCount(store)
		if code != pkg.ErrorNone {
			return code
		}
		*out = C.size_t(count)
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// relink_store_free closes the record space and releases its handle.
// The handle is invalid afterwards.
//
//export relink_store_free
func relink_store_free(storeHandle C.uint64_t) C.int32_t {
	status := boundary.Capture("relink_store_free", func() int {
		store := pkg.Handle4Store(uint64(storeHandle))
		if code := pkg.Store4Close(store); code != pkg.ErrorNone {
			return code
		}
		pkg.Handle4Free(uint64(storeHandle))
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// linklist_create creates an empty link list in the given store and returns
// its handle, or 0 on fault.
//
//export linklist_create
func linklist_create(storeHandle C.uint64_t) C.uint64_t {
	var h uint64
	boundary.Capture("linklist_create", func() int {
		store := pkg.Handle4Store(uint64(storeHandle))
		links, code := pkg.Link4New(store)
		if code != pkg.ErrorNone {
			return code
		}
		h = pkg.Handle4NewLink(links)
		return pkg.ErrorNone
	})
	return C.uint64_t(h)
}

// linklist_add appends a reference to the record at rowNdx to the end of
// the list.
//
//export linklist_add
func linklist_add(listHandle C.uint64_t, rowNdx C.size_t) C.int32_t {
	status := boundary.Capture("linklist_add", func() int {
		links := pkg.Handle4Link(uint64(listHandle))
		return pkg.Link4Add(links, uint64(rowNdx))
	})
	return C.int32_t(status)
}

// linklist_insert inserts a reference to the record at rowNdx before
// position insNdx.
//
//export linklist_insert
func linklist_insert(listHandle C.uint64_t, insNdx, rowNdx C.size_t) C.int32_t {
	status := boundary.Capture("linklist_insert", func() int {
		links := pkg.Handle4Link(uint64(listHandle))
		return pkg.Link4Insert(links, uint64(insNdx), uint64(rowNdx))
	})
	return C.int32_t(status)
}

// linklist_erase removes the reference at position ndx.
//
//export linklist_erase
func linklist_erase(listHandle C.uint64_t, ndx C.size_t) C.int32_t {
	status := boundary.Capture("linklist_erase", func() int {
		links := pkg.Handle4Link(uint64(listHandle))
		return pkg.Link4Erase(links, uint64(ndx))
	})
	return C.int32_t(status)
}

// linklist_clear removes every reference from the list.
//
//export linklist_clear
func linklist_clear(listHandle C.uint64_t) C.int32_t {
	status := boundary.Capture("linklist_clear", func() int {
		links := pkg.Handle4Link(uint64(listHandle))
		return pkg.Link4Clear(links)
	})
	return C.int32_t(status)
}

// linklist_get writes the row index referenced at position ndx to out.
//
//export linklist_get
func linklist_get(listHandle C.uint64_t, ndx C.size_t, out *C.size_t) C.int32_t {
	status := boundary.Capture("linklist_get", func() int {
		if out == nil {
			return pkg.ErrorMemory
		}
		links := pkg.Handle4Link(uint64(listHandle))
		row, code := pkg.Link4Get(links, uint64(ndx))
		if code != pkg.ErrorNone {
			return code
		}
		*out = C.size_t(row)
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// linklist_size writes the current element count of the list to out.
// No mutation.
//
//export linklist_size
func linklist_size(listHandle C.uint64_t, out *C.size_t) C.int32_t {
	status := boundary.Capture("linklist_size", func() int {
		if out == nil {
			return pkg.ErrorMemory
		}
		links := pkg.Handle4Link(uint64(listHandle))
		size, code := pkg.Link4Size(links)
		if code != pkg.ErrorNone {
			return code
		}
		*out = C.size_t(size)
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// linklist_find writes the position of the first reference to rowNdx to
// out, or -1 when the list holds no reference to that row.
//
//export linklist_find
func linklist_find(listHandle C.uint64_t, rowNdx C.size_t, out *C.longlong) C.int32_t {
	status := boundary.Capture("linklist_find", func() int {
		if out == nil {
			return pkg.ErrorMemory
		}
		links := pkg.Handle4Link(uint64(listHandle))
		pos, code := pkg.Link4Find(links, uint64(rowNdx))
		if code != pkg.ErrorNone {
			return code
		}
		*out = C.longlong(pos)
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// linklist_destroy releases the link list and frees its handle. The handle
// is invalid afterwards; further calls on it report a handle fault.
//
//export linklist_destroy
func linklist_destroy(listHandle C.uint64_t) C.int32_t {
	status := boundary.Capture("linklist_destroy", func() int {
		links := pkg.Handle4Link(uint64(listHandle))
		if code := pkg.Link4Destroy(links); code != pkg.ErrorNone {
			return code
		}
		pkg.Handle4Free(uint64(listHandle))
		return pkg.ErrorNone
	})
	return C.int32_t(status)
}

// relink_last_error returns the diagnostic text of the most recent fault,
// or NULL when no fault has occurred. The caller owns the returned string
// and must free it.
//
//export relink_last_error
func relink_last_error() *C.char {
	fault, ok := boundary.LastFault()
	if !ok {
		return nil
	}
	return C.CString(fault.Message)
}

// relink_clear_error empties the last-fault slot.
//
//export relink_clear_error
func relink_clear_error() {
	boundary.ClearFault()
}

func main() {}
