//go:build !windows

package supervise

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/Paintersrp/stagehand/internal/trace"
)

// relayedSignals covers the standard and real-time signal range. SIGCHLD is
// left untouched so waiting on the child keeps working; SIGKILL and SIGSTOP
// cannot be caught. SIGURG belongs to the runtime's goroutine preemption
// and SIGPIPE keeps its usual write semantics, so neither is relayed.
func relayedSignals() []os.Signal {
	sigs := make([]os.Signal, 0, maxSignal)
	for n := 1; n <= maxSignal; n++ {
		sig := syscall.Signal(n)
		switch sig {
		case syscall.SIGCHLD, syscall.SIGKILL, syscall.SIGSTOP,
			syscall.SIGURG, syscall.SIGPIPE:
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// installRelay starts relaying received signals to pid. The returned stop
// function restores default handling for every relayed signal and is safe
// to call more than once.
func (s *Supervisor) installRelay(pid int) func() {
	sigs := relayedSignals()
	ch := make(chan os.Signal, 16)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case recv := <-ch:
				sig, ok := recv.(syscall.Signal)
				if !ok {
					continue
				}
				if s.ignoreSignals {
					trace.Log().Debug().Stringer("signal", sig).Msg("ignoring signal")
					continue
				}
				trace.Log().Debug().Stringer("signal", sig).Int("pid", pid).Msg("forwarding signal to child")
				if err := unix.Kill(pid, sig); err != nil {
					trace.Log().Debug().Stringer("signal", sig).Err(err).Msg("forward failed")
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Reset(sigs...)
			close(done)
			<-finished
		})
	}
}

// reraise restores the default disposition for sig and delivers it to this
// process, reproducing the child's signal death for the launcher's parent.
func reraise(sig syscall.Signal) {
	signal.Reset(sig)
	_ = unix.Kill(os.Getpid(), sig)
}
