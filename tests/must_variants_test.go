package tests

import (
	"testing"

	"github.com/mkfoss/relink"
)

func TestMustVariantsBasic(t *testing.T) {
	testCases := []struct {
		name     string
		backend  string
		expected relink.Backend
	}{
		{"Pure Go Backend", "", relink.BackendPureGo},
		{"CGO Backend", cgoBackend, relink.BackendCGO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.backend == cgoBackend && !cgoBuildTagPresent() {
				t.Skip("CGO backend not available in this build")
			}

			s := relink.NewStore()
			defer s.Close()

			s.MustOpen(false)
			s.MustAppendRows(3)

			if count := s.MustRecCount(); count != 3 {
				t.Errorf("MustRecCount() = %d, expected 3", count)
			}

			ll := s.MustNewLinkList()
			ll.MustAdd(0)
			ll.MustInsert(0, 2)

			if size := ll.MustSize(); size != 2 {
				t.Errorf("MustSize() = %d, expected 2", size)
			}
			if row := ll.MustGet(0); row != 2 {
				t.Errorf("MustGet(0) = %d, expected 2", row)
			}
			if pos := ll.MustFind(0); pos != 1 {
				t.Errorf("MustFind(0) = %d, expected 1", pos)
			}

			ll.MustErase(0)
			ll.MustDestroy()
		})
	}
}

func TestMustVariantsPanicBehavior(t *testing.T) {
	testCases := []struct {
		name     string
		backend  string
		expected relink.Backend
	}{
		{"Pure Go Backend", "", relink.BackendPureGo},
		{"CGO Backend", cgoBackend, relink.BackendCGO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.backend == cgoBackend && !cgoBuildTagPresent() {
				t.Skip("CGO backend not available in this build")
			}

			s := relink.NewStore()
			defer s.Close()

			// Test MustAppendRows panics without open store
			t.Run("MustAppendRows panics without open store", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustAppendRows should have panicked without open store")
					}
				}()
				s.MustAppendRows(1)
			})

			// Test MustRecCount panics without open store
			t.Run("MustRecCount panics without open store", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustRecCount should have panicked without open store")
					}
				}()
				s.MustRecCount()
			})

			// Test MustNewLinkList panics without open store
			t.Run("MustNewLinkList panics without open store", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustNewLinkList should have panicked without open store")
					}
				}()
				s.MustNewLinkList()
			})

			// Test MustOpen panics on double open
			t.Run("MustOpen panics on double open", func(t *testing.T) {
				s.MustOpen(false)
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustOpen should have panicked on an already-open store")
					}
				}()
				s.MustOpen(false)
			})
		})
	}
}

func TestMustVariantsPanicAfterDestroy(t *testing.T) {
	testCases := []struct {
		name     string
		backend  string
		expected relink.Backend
	}{
		{"Pure Go Backend", "", relink.BackendPureGo},
		{"CGO Backend", cgoBackend, relink.BackendCGO},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.backend == cgoBackend && !cgoBuildTagPresent() {
				t.Skip("CGO backend not available in this build")
			}

			s := relink.NewStore()
			defer s.Close()

			s.MustOpen(false)
			s.MustAppendRows(5)

			ll := s.MustNewLinkList()
			ll.MustAdd(1)
			ll.MustDestroy()

			// Test MustSize panics on destroyed list
			t.Run("MustSize panics on destroyed list", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustSize should have panicked on a destroyed list")
					}
				}()
				ll.MustSize()
			})

			// Test MustAdd panics on destroyed list
			t.Run("MustAdd panics on destroyed list", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustAdd should have panicked on a destroyed list")
					}
				}()
				ll.MustAdd(1)
			})

			// Test MustDestroy panics on second destroy
			t.Run("MustDestroy panics on second destroy", func(t *testing.T) {
				defer func() {
					if r := recover(); r == nil {
						t.Error("MustDestroy should have panicked on a destroyed list")
					}
				}()
				ll.MustDestroy()
			})

			// The panic payload is the structured fault itself
			t.Run("panic payload is an EngineFault", func(t *testing.T) {
				defer func() {
					r := recover()
					if r == nil {
						t.Fatal("MustGet should have panicked on a destroyed list")
					}
					fault, ok := r.(*relink.EngineFault)
					if !ok {
						t.Fatalf("panic payload is %T, expected *relink.EngineFault", r)
					}
					if fault.Category != relink.FaultHandle {
						t.Errorf("fault category = %s, expected handle", fault.Category)
					}
				}()
				ll.MustGet(0)
			})
		})
	}
}
