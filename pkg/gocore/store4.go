// Package pkg - RL4STORE functions
package pkg

// Store4Open opens a new record space against an initialized context.
// The store starts empty; rows are added with Store4AppendRows.
//
// Returns the store on success, nil if the context is nil or uninitialized.
func Store4Open(core *Core4, readOnly bool) *Store4 {
	if core == nil || !core.Initialized {
		return nil
	}

	store := &Store4{
		Core:     core,
		RecCount: 0,
		ReadOnly: readOnly,
		IsValid:  true,
	}
	core.Stores = append(core.Stores, store)

	setError(core, nil, ErrorNone, "store4open")
	return store
}

// Store4AppendRows grows the record space by count rows. The new rows occupy
// indices [old RecCount, old RecCount+count).
//
// Returns ErrorNone on success, ErrorHandle for a nil or closed store,
// ErrorState when the store is read-only and safety is on.
func Store4AppendRows(store *Store4, count uint64) int {
	if store == nil || !store.IsValid {
		return setError(nil, store, ErrorHandle, "store4appendRows")
	}

	if store.ReadOnly && store.Core != nil && store.Core.Safety {
		return setError(nil, store, ErrorState, "store4appendRows")
	}

	store.RecCount += count
	return setError(nil, store, ErrorNone, "store4appendRows")
}

// Store4RecCount returns the number of rows in the record space.
//
// Returns the count and ErrorNone on success, 0 and ErrorHandle for a nil
// or closed store.
func Store4RecCount(store *Store4) (uint64, int) {
	if store == nil || !store.IsValid {
		return 0, setError(nil, store, ErrorHandle, "store4recCount")
	}
	return store.RecCount, ErrorNone
}

// Store4ReadOnlySet changes the store's read-only state. Mutating operations
// on link lists belonging to a read-only store report ErrorState.
func Store4ReadOnlySet(store *Store4, readOnly bool) int {
	if store == nil || !store.IsValid {
		return setError(nil, store, ErrorHandle, "store4readOnlySet")
	}
	store.ReadOnly = readOnly
	return ErrorNone
}

// Store4Close invalidates the store. Link lists pointing into it keep their
// contents but refuse further operations with ErrorHandle.
//
// Returns ErrorNone on success, ErrorHandle for a nil store, ErrorDestroy
// when the store was already closed.
func Store4Close(store *Store4) int {
	if store == nil {
		return ErrorHandle
	}
	if !store.IsValid {
		return setError(nil, store, ErrorDestroy, "store4close")
	}

	store.IsValid = false

	if store.Core != nil {
		stores := store.Core.Stores
		for i, s := range stores {
			if s == store {
				store.Core.Stores = append(stores[:i], stores[i+1:]...)
				break
			}
		}
	}

	return ErrorNone
}
