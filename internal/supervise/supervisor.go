package supervise

import (
	"fmt"
	"strings"
	"time"

	"github.com/Paintersrp/stagehand/internal/launch"
	"github.com/Paintersrp/stagehand/internal/trace"
)

// pollInterval is the cadence of the non-blocking wait used while a desktop
// event pump is attached.
const pollInterval = time.Second

// EventPump drains pending desktop open-document events. It is present only
// on platforms with a desktop event system; a nil pump disables the hooks.
type EventPump interface {
	// Pump processes queued events, forwarding open-document events to
	// pid when nonzero, and returns once no event arrives within its
	// bounded poll timeout.
	Pump(pid int)
	// PendingArguments drains file paths harvested from open-document
	// events received while no child existed.
	PendingArguments() []string
}

// Config assembles a Supervisor.
type Config struct {
	Spawner Spawner
	// Pump may be nil.
	Pump EventPump
	// IgnoreSignals swallows relayed signals instead of forwarding them.
	IgnoreSignals bool
	SpawnOptions  SpawnOptions
}

// Supervisor runs the child application to termination, relaying signals
// while it lives.
type Supervisor struct {
	spawner       Spawner
	pump          EventPump
	ignoreSignals bool
	spawnOpts     SpawnOptions
}

// New builds a Supervisor from cfg. A nil Spawner selects the platform
// default.
func New(cfg Config) *Supervisor {
	spawner := cfg.Spawner
	if spawner == nil {
		spawner = NewSpawner()
	}
	return &Supervisor{
		spawner:       spawner,
		pump:          cfg.Pump,
		ignoreSignals: cfg.IgnoreSignals,
		spawnOpts:     cfg.SpawnOptions,
	}
}

// Run spawns the child built from argv and supervises it until it
// terminates. The returned error covers spawn failure only; everything the
// child does, including dying from a signal, is reported through the
// Result. The signal relay is installed only after the child's pid is known
// and torn down before Run returns, on every path.
func (s *Supervisor) Run(ctx *launch.Context, argv []string) (Result, error) {
	args := FilterArgs(argv)

	if s.pump != nil {
		// Harvest open-document events queued before the child exists.
		s.pump.Pump(0)
		if pending := s.pump.PendingArguments(); len(pending) > 0 {
			trace.Log().Debug().Strs("args", pending).Msg("appending open-document arguments")
			args = append(args, pending...)
		}
	}

	handle, err := s.spawner.Spawn(args, s.spawnOpts)
	if err != nil {
		return Result{}, fmt.Errorf("spawn child: %w", err)
	}
	ctx.ChildPID = handle.PID()

	stop := s.installRelay(handle.PID())
	defer stop()

	res := s.wait(handle)
	if res.WaitErr != nil {
		trace.Log().Error().Err(res.WaitErr).Msg("wait for child failed")
	}
	return res, nil
}

// wait blocks until the child terminates. With a pump attached it instead
// polls on a fixed cadence, keeping the desktop event queue drained while
// the child runs.
func (s *Supervisor) wait(h Handle) Result {
	if s.pump == nil {
		return h.Wait()
	}

	done := make(chan Result, 1)
	go func() {
		done <- h.Wait()
	}()

	for {
		select {
		case res := <-done:
			return res
		case <-time.After(pollInterval):
			s.pump.Pump(h.PID())
		}
	}
}

// FilterArgs strips the process-serial-number argument some window systems
// prepend when the launcher starts from the dock.
func FilterArgs(argv []string) []string {
	out := make([]string, 0, len(argv))
	for _, arg := range argv {
		if strings.HasPrefix(arg, "-psn") {
			continue
		}
		out = append(out, arg)
	}
	return out
}
