package supervise

import "syscall"

// Result is the tagged outcome of waiting on the child: it exited normally
// with a code, it was killed by a signal, or the wait itself failed.
type Result struct {
	// Code is the child's exit code when Exited reports true.
	Code int
	// Signal is the signal that killed the child, zero otherwise.
	Signal syscall.Signal
	// WaitErr is set when the wait call failed; the other fields are then
	// meaningless.
	WaitErr error
}

// Exited reports whether the child exited normally.
func (r Result) Exited() bool {
	return r.WaitErr == nil && r.Signal == 0
}

// Signaled reports whether the child was killed by an uncaught signal.
func (r Result) Signaled() bool {
	return r.WaitErr == nil && r.Signal != 0
}
