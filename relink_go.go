//go:build !relinkcgo
// +build !relinkcgo

package relink

import (
	"github.com/mkfoss/relink/internal/boundary"
	pkg "github.com/mkfoss/relink/pkg/gocore"
)

// pureGoImpl implements storeImpl using the gocore pure Go reference engine
type pureGoImpl struct {
	core  *pkg.Core4
	store *pkg.Store4
}

// NewStore creates a new Store instance with the pure Go backend
func NewStore() *Store {
	impl := &pureGoImpl{}
	return &Store{impl: impl}
}

// capture runs one engine call inside the uniform fault-capturing scope and
// translates a non-zero status into an *EngineFault. Engine panics surface
// the same way; they never escape the binding.
func capture(op string, fn func() int) error {
	status := boundary.Capture(op, fn)
	if status == boundary.StatusOK {
		return nil
	}

	message := pkg.ErrorDescription(int(status))
	if fault, ok := boundary.LastFault(); ok && fault.Op == op {
		message = fault.Message
	}
	return newEngineFault(op, int(status), message)
}

// Open opens the record space backed by the reference engine
func (p *pureGoImpl) Open(readOnly bool) error {
	if p.store != nil {
		return newEngineFault("open", codeState, "store already open")
	}

	p.core = &pkg.Core4{}
	return capture("open", func() int {
		if code := pkg.Core4Init(p.core); code != pkg.ErrorNone {
			return code
		}
		p.store = pkg.Store4Open(p.core, readOnly)
		if p.store == nil {
			return pkg.ErrorMemory
		}
		return pkg.ErrorNone
	})
}

// Close closes the record space and releases engine resources
func (p *pureGoImpl) Close() error {
	if p.store == nil {
		return nil
	}

	err := capture("close", func() int {
		return pkg.Core4InitUndo(p.core)
	})
	p.store = nil
	p.core = nil
	return err
}

// Active reports whether the record space is open
func (p *pureGoImpl) Active() bool {
	return p.store != nil && p.store.IsValid
}

func (p *pureGoImpl) AppendRows(count uint64) error {
	return capture("appendRows", func() int {
		return pkg.Store4AppendRows(p.store, count)
	})
}

func (p *pureGoImpl) RecCount() (uint64, error) {
	var count uint64
	err := capture("recCount", func() int {
		var code int
		count, code = pkg.Store4RecCount(p.store)
		return code
	})
	return count, err
}

func (p *pureGoImpl) ReadOnlySet(readOnly bool) error {
	return capture("readOnlySet", func() int {
		return pkg.Store4ReadOnlySet(p.store, readOnly)
	})
}

func (p *pureGoImpl) NewLinkList() (linkListImpl, error) {
	var links *pkg.LinkList4
	err := capture("newLinkList", func() int {
		var code int
		links, code = pkg.Link4New(p.store)
		return code
	})
	if err != nil {
		return nil, err
	}
	return &pureGoLinks{links: links}, nil
}

// Backend returns the backend type
func (p *pureGoImpl) Backend() Backend {
	return BackendPureGo
}

// pureGoLinks implements linkListImpl over a gocore link list
type pureGoLinks struct {
	links *pkg.LinkList4
}

func (l *pureGoLinks) Add(rowNdx uint64) error {
	return capture("add", func() int {
		return pkg.Link4Add(l.links, rowNdx)
	})
}

func (l *pureGoLinks) Insert(insNdx, rowNdx uint64) error {
	return capture("insert", func() int {
		return pkg.Link4Insert(l.links, insNdx, rowNdx)
	})
}

func (l *pureGoLinks) Erase(ndx uint64) error {
	return capture("erase", func() int {
		return pkg.Link4Erase(l.links, ndx)
	})
}

func (l *pureGoLinks) Clear() error {
	return capture("clear", func() int {
		return pkg.Link4Clear(l.links)
	})
}

func (l *pureGoLinks) Get(ndx uint64) (uint64, error) {
	var row uint64
	err := capture("get", func() int {
		var code int
		row, code = pkg.Link4Get(l.links, ndx)
		return code
	})
	return row, err
}

func (l *pureGoLinks) Size() (uint64, error) {
	var size uint64
	err := capture("size", func() int {
		var code int
		size, code = pkg.Link4Size(l.links)
		return code
	})
	return size, err
}

func (l *pureGoLinks) Find(rowNdx uint64) (int64, error) {
	pos := LinkNotFound
	err := capture("find", func() int {
		var code int
		pos, code = pkg.Link4Find(l.links, rowNdx)
		return code
	})
	return pos, err
}

func (l *pureGoLinks) Destroy() error {
	return capture("destroy", func() int {
		return pkg.Link4Destroy(l.links)
	})
}

func (l *pureGoLinks) Valid() bool {
	return l.links != nil && l.links.Valid
}

// Backend returns the backend type
func (l *pureGoLinks) Backend() Backend {
	return BackendPureGo
}
