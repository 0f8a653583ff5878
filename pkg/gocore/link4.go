// Package pkg - RL4LINKS functions
// Ordered row-reference list operations
package pkg

// link4Check validates a link list and its store for use by any operation.
// Returns ErrorNone when the list is live, the refusing status otherwise.
func link4Check(links *LinkList4, op string) int {
	if links == nil || !links.Valid {
		return setError(nil, nil, ErrorHandle, op)
	}
	if links.Store == nil || !links.Store.IsValid {
		return setError(nil, nil, ErrorHandle, op)
	}
	return ErrorNone
}

// link4CheckWrite validates a link list for a mutating operation.
func link4CheckWrite(links *LinkList4, op string) int {
	if code := link4Check(links, op); code != ErrorNone {
		return code
	}
	if links.Store.ReadOnly && links.Store.Core != nil && links.Store.Core.Safety {
		return setError(nil, links.Store, ErrorState, op)
	}
	return ErrorNone
}

// Link4New creates an empty link list pointing into the given store.
//
// Returns the list and ErrorNone on success, nil and ErrorHandle for a nil
// or closed store.
func Link4New(store *Store4) (*LinkList4, int) {
	if store == nil || !store.IsValid {
		return nil, setError(nil, store, ErrorHandle, "link4new")
	}

	links := &LinkList4{
		Store: store,
		Valid: true,
	}
	if store.Core != nil {
		store.Core.LinkCount++
	}

	return links, ErrorNone
}

// Link4Add appends a reference to the row at rowNdx to the end of the list.
//
// Returns ErrorNone on success, ErrorHandle for a dead list or store,
// ErrorBounds when rowNdx is outside the store's record space, ErrorState
// when the store is read-only.
func Link4Add(links *LinkList4, rowNdx uint64) int {
	if code := link4CheckWrite(links, "link4add"); code != ErrorNone {
		return code
	}
	if rowNdx >= links.Store.RecCount {
		return setError(nil, links.Store, ErrorBounds, "link4add")
	}

	links.Rows = append(links.Rows, rowNdx)
	return setError(nil, links.Store, ErrorNone, "link4add")
}

// Link4Insert inserts a reference to the row at rowNdx before position
// insNdx. insNdx may equal the current size, which appends.
func Link4Insert(links *LinkList4, insNdx uint64, rowNdx uint64) int {
	if code := link4CheckWrite(links, "link4insert"); code != ErrorNone {
		return code
	}
	if rowNdx >= links.Store.RecCount || insNdx > uint64(len(links.Rows)) {
		return setError(nil, links.Store, ErrorBounds, "link4insert")
	}

	links.Rows = append(links.Rows, 0)
	copy(links.Rows[insNdx+1:], links.Rows[insNdx:])
	links.Rows[insNdx] = rowNdx
	return setError(nil, links.Store, ErrorNone, "link4insert")
}

// Link4Erase removes the reference at position ndx. The referenced row
// itself is untouched.
func Link4Erase(links *LinkList4, ndx uint64) int {
	if code := link4CheckWrite(links, "link4erase"); code != ErrorNone {
		return code
	}
	if ndx >= uint64(len(links.Rows)) {
		return setError(nil, links.Store, ErrorBounds, "link4erase")
	}

	links.Rows = append(links.Rows[:ndx], links.Rows[ndx+1:]...)
	return setError(nil, links.Store, ErrorNone, "link4erase")
}

// Link4Clear removes every reference from the list.
func Link4Clear(links *LinkList4) int {
	if code := link4CheckWrite(links, "link4clear"); code != ErrorNone {
		return code
	}

	links.Rows = links.Rows[:0]
	return setError(nil, links.Store, ErrorNone, "link4clear")
}

// Link4Get returns the row index referenced at position ndx.
func Link4Get(links *LinkList4, ndx uint64) (uint64, int) {
	if code := link4Check(links, "link4get"); code != ErrorNone {
		return 0, code
	}
	if ndx >= uint64(len(links.Rows)) {
		return 0, setError(nil, links.Store, ErrorBounds, "link4get")
	}
	return links.Rows[ndx], ErrorNone
}

// Link4Size returns the current element count of the list. No mutation.
func Link4Size(links *LinkList4) (uint64, int) {
	if code := link4Check(links, "link4size"); code != ErrorNone {
		return 0, code
	}
	return uint64(len(links.Rows)), ErrorNone
}

// Link4Find returns the position of the first reference to rowNdx, or
// Link4NotFound when the list holds no reference to that row.
func Link4Find(links *LinkList4, rowNdx uint64) (int64, int) {
	if code := link4Check(links, "link4find"); code != ErrorNone {
		return Link4NotFound, code
	}

	for i, row := range links.Rows {
		if row == rowNdx {
			return int64(i), ErrorNone
		}
	}
	return Link4NotFound, ErrorNone
}

// Link4Destroy releases the list. After destroy the list is invalid and
// every further operation on it reports ErrorHandle. Destroying an already
// destroyed list reports ErrorDestroy.
func Link4Destroy(links *LinkList4) int {
	if links == nil {
		return ErrorHandle
	}
	if !links.Valid {
		return setError(nil, links.Store, ErrorDestroy, "link4destroy")
	}

	links.Valid = false
	links.Rows = nil
	if links.Store != nil && links.Store.Core != nil {
		links.Store.Core.LinkCount--
	}

	return ErrorNone
}
