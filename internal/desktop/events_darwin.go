//go:build darwin && cgo

package desktop

/*
#cgo LDFLAGS: -framework Carbon -framework ApplicationServices

#include <Carbon/Carbon.h>

void stagehand_pump_events(void);
*/
import "C"

import (
	"sync"
	"sync/atomic"

	"github.com/Paintersrp/stagehand/internal/trace"
)

// Forwarder drains OpenDocument events from the window system. The Carbon
// handlers are process-wide state, so only one Forwarder is ever active.
type Forwarder struct{}

var (
	pendingMu sync.Mutex
	pending   []string
	childPID  atomic.Int64
)

// New returns the process's event forwarder.
func New() *Forwarder {
	return &Forwarder{}
}

// Pump processes queued desktop events, forwarding open-document events to
// pid when nonzero. It returns control to the caller once no further event
// arrives within the one second receive timeout.
func (f *Forwarder) Pump(pid int) {
	childPID.Store(int64(pid))
	C.stagehand_pump_events()
}

// PendingArguments drains the document paths harvested while no child
// existed.
func (f *Forwarder) PendingArguments() []string {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	out := pending
	pending = nil
	return out
}

//export stagehandAppendArgument
func stagehandAppendArgument(arg *C.char) {
	path := C.GoString(arg)
	trace.Log().Debug().Str("path", path).Msg("harvested open-document argument")
	pendingMu.Lock()
	pending = append(pending, path)
	pendingMu.Unlock()
}

//export stagehandChildPID
func stagehandChildPID() C.int {
	return C.int(childPID.Load())
}

//export stagehandTrace
func stagehandTrace(msg *C.char) {
	trace.Log().Debug().Msg(C.GoString(msg))
}
