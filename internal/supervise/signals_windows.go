//go:build windows

package supervise

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// The console delivers interrupt events to the child directly; the parent
// only shields itself so it survives to collect the exit code.
func (s *Supervisor) installRelay(int) func() {
	sigs := []os.Signal{os.Interrupt, syscall.SIGTERM}
	signal.Ignore(sigs...)

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Reset(sigs...)
		})
	}
}

// Windows children do not die from signals in the POSIX sense; the signal
// branch of the result mapping is unreachable here, but keep a sane
// fallback.
func reraise(syscall.Signal) {
	os.Exit(1)
}
