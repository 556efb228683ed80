// Package scratch manages the private per-launch directory used to stage
// extracted payload files.
package scratch

import (
	"errors"
	"fmt"

	"github.com/Paintersrp/stagehand/internal/config"
	"github.com/Paintersrp/stagehand/internal/launch"
	"github.com/Paintersrp/stagehand/internal/trace"
)

const namePrefix = "stagehand-"

var errNoCandidate = errors.New("no usable temp directory candidate")

// Manager creates the scratch directory, probing an ordered list of base
// directory candidates until one yields a usable private directory.
type Manager struct {
	// Candidates overrides the platform's default base-directory probe
	// order. A nil slice selects the default order. An explicit
	// runtime-tmpdir option bypasses the candidate list entirely.
	Candidates []string

	failedAttempts int
}

// Ensure creates the scratch directory if the context does not already have
// one. A second call with ScratchCreated set is a no-op.
func (m *Manager) Ensure(ctx *launch.Context) error {
	if ctx.ScratchCreated {
		return nil
	}

	var override string
	if ctx.Options != nil {
		if v, ok := ctx.Options.Lookup(config.OptionRuntimeTmpdir); ok {
			override = v
			trace.Log().Debug().Str("dir", v).Msg("using runtime tmpdir override")
		}
	}

	dir, err := m.create(override)
	if err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}

	ctx.ScratchDir = dir
	ctx.ScratchCreated = true
	trace.Log().Debug().Str("dir", dir).Msg("scratch directory created")
	return nil
}

// FailedAttempts returns the number of base-directory candidates that were
// probed unsuccessfully before creation succeeded or gave up.
func (m *Manager) FailedAttempts() int {
	return m.failedAttempts
}

func (m *Manager) candidates() []string {
	if m.Candidates != nil {
		return m.Candidates
	}
	return defaultCandidates()
}
