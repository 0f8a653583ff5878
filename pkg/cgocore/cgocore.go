// Package cgocore provides direct access to the librl4 C engine for link
// list operations. This package offers maximum performance through direct C
// library integration but requires CGO and an installed librl4.
//
// Usage:
//   import "github.com/mkfoss/relink/pkg/cgocore"
//   // Use C library functions directly
//
// For a high-level unified interface that can switch between backends, use
// the main relink package instead.
package cgocore

/*
#cgo CFLAGS: -I./rl4lib
#cgo LDFLAGS: -L./rl4lib -lrl4
#include "rl4.h"
#include <stdlib.h>
*/
import "C"

// This package exposes the librl4 engine functionality directly.
// Users can access all C functions through the C import.
//
// Example:
//   core := C.rl4init()
//   store := C.s4open(core, 0)
//   links := C.l4new(store)
//   C.l4add(links, 5)
//
// Every librl4 entry point reports failure through an int status code; the
// engine never longjmps or unwinds across the call. For easier usage,
// consider the main relink package which provides a unified Go-friendly
// interface that can use this backend via build tags.
