// Package boundary implements the uniform fault-capturing scope every
// exported boundary operation runs inside. A wrapped engine call either
// returns its status unchanged or, when it panics, has the panic stopped
// here and translated to a stable status code. No native fault may ever
// unwind across a foreign-function boundary; unwinding into a foreign
// runtime is undefined behavior in the host process.
//
// The status code travels in-band; diagnostic detail is recorded
// out-of-band in a process-wide last-fault slot.
package boundary

import (
	"fmt"
	"sync"

	pkg "github.com/mkfoss/relink/pkg/gocore"
)

// Boundary status codes. Engine status codes pass through unchanged; a
// recovered panic is reported as StatusPanic.
const (
	StatusOK    int32 = 0
	StatusPanic int32 = int32(pkg.ErrorFault)
)

// Fault carries the out-of-band detail of the last boundary failure.
type Fault struct {
	Op      string
	Code    int32
	Message string
}

var lastFault = struct {
	mu    sync.Mutex
	fault Fault
	set   bool
}{}

// Capture runs fn inside the fault-capturing scope and returns its status.
// A non-zero status from fn and any recovered panic both record a Fault in
// the last-fault slot; a recovered panic additionally maps to StatusPanic.
func Capture(op string, fn func() int) (status int32) {
	defer func() {
		if r := recover(); r != nil {
			status = StatusPanic
			record(Fault{Op: op, Code: StatusPanic, Message: fmt.Sprint(r)})
		}
	}()

	status = int32(fn())
	if status != StatusOK {
		record(Fault{Op: op, Code: status, Message: pkg.ErrorDescription(int(status))})
	}
	return status
}

// LastFault returns a copy of the most recent fault and whether one has
// been recorded since the last ClearFault.
func LastFault() (Fault, bool) {
	lastFault.mu.Lock()
	defer lastFault.mu.Unlock()
	return lastFault.fault, lastFault.set
}

// ClearFault empties the last-fault slot.
func ClearFault() {
	lastFault.mu.Lock()
	defer lastFault.mu.Unlock()
	lastFault.fault = Fault{}
	lastFault.set = false
}

func record(f Fault) {
	lastFault.mu.Lock()
	defer lastFault.mu.Unlock()
	lastFault.fault = f
	lastFault.set = true
}
