//go:build relinkcgo
// +build relinkcgo

package relink

/*
#cgo CFLAGS: -I./pkg/cgocore/rl4lib
#cgo LDFLAGS: -L./pkg/cgocore/rl4lib -lrl4
#include "rl4.h"
#include <stdlib.h>
*/
import "C"
import (
	"runtime"
)

// cgoImpl implements storeImpl using the librl4 C engine via CGO
type cgoImpl struct {
	core  *C.RL4CORE
	store *C.RL4STORE
}

// NewStore creates a new Store instance with the CGO backend
func NewStore() *Store {
	impl := &cgoImpl{}
	return &Store{impl: impl}
}

// cgoFault turns a librl4 status code into an *EngineFault, pulling the
// engine's diagnostic text for the code. librl4 reports faults by status
// code only; no fault ever unwinds out of the C call.
func cgoFault(op string, code C.int) error {
	if code == C.int(codeNone) {
		return nil
	}
	message := C.GoString(C.rl4errorText(code))
	return newEngineFault(op, int(code), message)
}

// Open opens a record space in the native engine
func (c *cgoImpl) Open(readOnly bool) error {
	if c.store != nil {
		return newEngineFault("open", codeState, "store already open")
	}

	c.core = C.rl4init()
	if c.core == nil {
		return newEngineFault("open", codeMemory, "failed to initialize engine context")
	}

	ro := C.int(0)
	if readOnly {
		ro = 1
	}
	c.store = C.s4open(c.core, ro)
	if c.store == nil {
		code := C.rl4errorCode(c.core)
		C.rl4initUndo(c.core)
		c.core = nil
		return cgoFault("open", code)
	}

	// Finalizer as a backstop; Close should still be called explicitly.
	runtime.SetFinalizer(c, (*cgoImpl).finalize)

	return nil
}

// Close closes the record space and releases engine resources
func (c *cgoImpl) Close() error {
	if c.store == nil {
		return nil
	}

	runtime.SetFinalizer(c, nil)
	return c.reset()
}

// finalize is called by the garbage collector to ensure cleanup
func (c *cgoImpl) finalize() {
	if c.store != nil {
		_ = c.Close()
	}
}

func (c *cgoImpl) reset() error {
	var err error
	if c.store != nil {
		err = cgoFault("close", C.s4close(c.store))
		c.store = nil
	}
	if c.core != nil {
		C.rl4initUndo(c.core)
		c.core = nil
	}
	return err
}

// Active reports whether the record space is open
func (c *cgoImpl) Active() bool {
	return c.store != nil
}

func (c *cgoImpl) AppendRows(count uint64) error {
	if c.store == nil {
		return newEngineFault("appendRows", codeHandle, "store not open")
	}
	return cgoFault("appendRows", C.s4appendRows(c.store, C.size_t(count)))
}

func (c *cgoImpl) RecCount() (uint64, error) {
	if c.store == nil {
		return 0, newEngineFault("recCount", codeHandle, "store not open")
	}

	var count C.size_t
	if err := cgoFault("recCount", C.s4recCount(c.store, &count)); err != nil {
		return 0, err
	}
	return uint64(count), nil
}

func (c *cgoImpl) ReadOnlySet(readOnly bool) error {
	if c.store == nil {
		return newEngineFault("readOnlySet", codeHandle, "store not open")
	}

	ro := C.int(0)
	if readOnly {
		ro = 1
	}
	return cgoFault("readOnlySet", C.s4readOnlySet(c.store, ro))
}

func (c *cgoImpl) NewLinkList() (linkListImpl, error) {
	if c.store == nil {
		return nil, newEngineFault("newLinkList", codeHandle, "store not open")
	}

	links := C.l4new(c.store)
	if links == nil {
		return nil, cgoFault("newLinkList", C.rl4errorCode(c.core))
	}
	return &cgoLinks{links: links}, nil
}

// Backend returns the backend type
func (c *cgoImpl) Backend() Backend {
	return BackendCGO
}

// cgoLinks implements linkListImpl over a librl4 link list
type cgoLinks struct {
	links *C.RL4LINKS
}

func (l *cgoLinks) Add(rowNdx uint64) error {
	return cgoFault("add", C.l4add(l.links, C.size_t(rowNdx)))
}

func (l *cgoLinks) Insert(insNdx, rowNdx uint64) error {
	return cgoFault("insert", C.l4insert(l.links, C.size_t(insNdx), C.size_t(rowNdx)))
}

func (l *cgoLinks) Erase(ndx uint64) error {
	return cgoFault("erase", C.l4erase(l.links, C.size_t(ndx)))
}

func (l *cgoLinks) Clear() error {
	return cgoFault("clear", C.l4clear(l.links))
}

func (l *cgoLinks) Get(ndx uint64) (uint64, error) {
	var row C.size_t
	if err := cgoFault("get", C.l4get(l.links, C.size_t(ndx), &row)); err != nil {
		return 0, err
	}
	return uint64(row), nil
}

func (l *cgoLinks) Size() (uint64, error) {
	var size C.size_t
	if err := cgoFault("size", C.l4size(l.links, &size)); err != nil {
		return 0, err
	}
	return uint64(size), nil
}

func (l *cgoLinks) Find(rowNdx uint64) (int64, error) {
	var pos C.longlong
	if err := cgoFault("find", C.l4find(l.links, C.size_t(rowNdx), &pos)); err != nil {
		return LinkNotFound, err
	}
	return int64(pos), nil
}

func (l *cgoLinks) Destroy() error {
	err := cgoFault("destroy", C.l4destroy(l.links))
	if err == nil {
		l.links = nil
	}
	return err
}

func (l *cgoLinks) Valid() bool {
	return l.links != nil && C.l4valid(l.links) != 0
}

// Backend returns the backend type
func (l *cgoLinks) Backend() Backend {
	return BackendCGO
}
