package pkg

import "testing"

func newTestStore(t *testing.T, rows uint64) (*Core4, *Store4) {
	t.Helper()

	core := &Core4{}
	if code := Core4Init(core); code != ErrorNone {
		t.Fatalf("Core4Init returned %d", code)
	}

	store := Store4Open(core, false)
	if store == nil {
		t.Fatal("Store4Open returned nil")
	}
	if code := Store4AppendRows(store, rows); code != ErrorNone {
		t.Fatalf("Store4AppendRows returned %d", code)
	}
	return core, store
}

func TestLink4AddAndSize(t *testing.T) {
	_, store := newTestStore(t, 10)

	links, code := Link4New(store)
	if code != ErrorNone {
		t.Fatalf("Link4New returned %d", code)
	}

	if size, code := Link4Size(links); code != ErrorNone || size != 0 {
		t.Errorf("Link4Size = (%d, %d), expected (0, ErrorNone)", size, code)
	}

	if code := Link4Add(links, 5); code != ErrorNone {
		t.Errorf("Link4Add(5) returned %d", code)
	}
	if code := Link4Add(links, 7); code != ErrorNone {
		t.Errorf("Link4Add(7) returned %d", code)
	}

	if size, code := Link4Size(links); code != ErrorNone || size != 2 {
		t.Errorf("Link4Size = (%d, %d), expected (2, ErrorNone)", size, code)
	}

	if row, code := Link4Get(links, 0); code != ErrorNone || row != 5 {
		t.Errorf("Link4Get(0) = (%d, %d), expected (5, ErrorNone)", row, code)
	}
	if row, code := Link4Get(links, 1); code != ErrorNone || row != 7 {
		t.Errorf("Link4Get(1) = (%d, %d), expected (7, ErrorNone)", row, code)
	}
}

func TestLink4Bounds(t *testing.T) {
	core, store := newTestStore(t, 3)

	links, _ := Link4New(store)

	if code := Link4Add(links, 3); code != ErrorBounds {
		t.Errorf("Link4Add(3) returned %d, expected ErrorBounds", code)
	}
	if core.ErrorCode != ErrorBounds {
		t.Errorf("core.ErrorCode = %d, expected ErrorBounds", core.ErrorCode)
	}

	if code := Link4Insert(links, 1, 0); code != ErrorBounds {
		t.Errorf("Link4Insert past end returned %d, expected ErrorBounds", code)
	}
	if code := Link4Erase(links, 0); code != ErrorBounds {
		t.Errorf("Link4Erase on empty list returned %d, expected ErrorBounds", code)
	}
	if _, code := Link4Get(links, 0); code != ErrorBounds {
		t.Errorf("Link4Get on empty list returned %d, expected ErrorBounds", code)
	}
}

func TestLink4InsertOrder(t *testing.T) {
	_, store := newTestStore(t, 10)

	links, _ := Link4New(store)
	Link4Add(links, 1)
	Link4Add(links, 3)

	if code := Link4Insert(links, 1, 2); code != ErrorNone {
		t.Fatalf("Link4Insert(1, 2) returned %d", code)
	}
	// Insert at size appends
	if code := Link4Insert(links, 3, 4); code != ErrorNone {
		t.Fatalf("Link4Insert(3, 4) returned %d", code)
	}

	for i, expected := range []uint64{1, 2, 3, 4} {
		if row, _ := Link4Get(links, uint64(i)); row != expected {
			t.Errorf("Link4Get(%d) = %d, expected %d", i, row, expected)
		}
	}
}

func TestLink4Find(t *testing.T) {
	_, store := newTestStore(t, 10)

	links, _ := Link4New(store)
	Link4Add(links, 4)
	Link4Add(links, 6)
	Link4Add(links, 4)

	if pos, code := Link4Find(links, 4); code != ErrorNone || pos != 0 {
		t.Errorf("Link4Find(4) = (%d, %d), expected (0, ErrorNone)", pos, code)
	}
	if pos, code := Link4Find(links, 6); code != ErrorNone || pos != 1 {
		t.Errorf("Link4Find(6) = (%d, %d), expected (1, ErrorNone)", pos, code)
	}
	if pos, code := Link4Find(links, 9); code != ErrorNone || pos != Link4NotFound {
		t.Errorf("Link4Find(9) = (%d, %d), expected (Link4NotFound, ErrorNone)", pos, code)
	}
}

func TestLink4Destroy(t *testing.T) {
	core, store := newTestStore(t, 10)

	links, _ := Link4New(store)
	if core.LinkCount != 1 {
		t.Errorf("core.LinkCount = %d, expected 1", core.LinkCount)
	}

	Link4Add(links, 1)

	if code := Link4Destroy(links); code != ErrorNone {
		t.Fatalf("Link4Destroy returned %d", code)
	}
	if links.Valid {
		t.Error("links.Valid should be false after destroy")
	}
	if core.LinkCount != 0 {
		t.Errorf("core.LinkCount = %d, expected 0", core.LinkCount)
	}

	// Post-destroy operations report ErrorHandle
	if code := Link4Add(links, 1); code != ErrorHandle {
		t.Errorf("Link4Add after destroy returned %d, expected ErrorHandle", code)
	}
	if _, code := Link4Size(links); code != ErrorHandle {
		t.Errorf("Link4Size after destroy returned %d, expected ErrorHandle", code)
	}

	// Double destroy is guarded
	if code := Link4Destroy(links); code != ErrorDestroy {
		t.Errorf("second Link4Destroy returned %d, expected ErrorDestroy", code)
	}
}

func TestLink4NilHandling(t *testing.T) {
	if code := Link4Add(nil, 0); code != ErrorHandle {
		t.Errorf("Link4Add(nil) returned %d, expected ErrorHandle", code)
	}
	if _, code := Link4Size(nil); code != ErrorHandle {
		t.Errorf("Link4Size(nil) returned %d, expected ErrorHandle", code)
	}
	if code := Link4Destroy(nil); code != ErrorHandle {
		t.Errorf("Link4Destroy(nil) returned %d, expected ErrorHandle", code)
	}
	if _, code := Link4New(nil); code != ErrorHandle {
		t.Errorf("Link4New(nil) returned %d, expected ErrorHandle", code)
	}
}

func TestLink4ReadOnlyStore(t *testing.T) {
	_, store := newTestStore(t, 5)

	links, _ := Link4New(store)
	Link4Add(links, 0)

	if code := Store4ReadOnlySet(store, true); code != ErrorNone {
		t.Fatalf("Store4ReadOnlySet returned %d", code)
	}

	if code := Link4Add(links, 1); code != ErrorState {
		t.Errorf("Link4Add on read-only store returned %d, expected ErrorState", code)
	}
	if code := Link4Clear(links); code != ErrorState {
		t.Errorf("Link4Clear on read-only store returned %d, expected ErrorState", code)
	}

	// Reads stay allowed
	if size, code := Link4Size(links); code != ErrorNone || size != 1 {
		t.Errorf("Link4Size = (%d, %d), expected (1, ErrorNone)", size, code)
	}

	// Safety off disables the guard
	store.Core.Safety = false
	if code := Link4Add(links, 1); code != ErrorNone {
		t.Errorf("Link4Add with safety off returned %d, expected ErrorNone", code)
	}
}

func TestLink4StoreClose(t *testing.T) {
	_, store := newTestStore(t, 5)

	links, _ := Link4New(store)
	Link4Add(links, 1)

	if code := Store4Close(store); code != ErrorNone {
		t.Fatalf("Store4Close returned %d", code)
	}

	if _, code := Link4Size(links); code != ErrorHandle {
		t.Errorf("Link4Size after store close returned %d, expected ErrorHandle", code)
	}
	if code := Store4Close(store); code != ErrorDestroy {
		t.Errorf("second Store4Close returned %d, expected ErrorDestroy", code)
	}
}
