//go:build windows

package supervise

import (
	"fmt"

	"github.com/Paintersrp/stagehand/internal/trace"
)

type windowsSpawner struct{}

// NewSpawner returns the platform spawner.
func NewSpawner() Spawner {
	return windowsSpawner{}
}

func (windowsSpawner) Spawn(argv []string, opts SpawnOptions) (Handle, error) {
	cmd := newCommand(argv, opts)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start child: %w", err)
	}
	trace.Log().Debug().Int("pid", cmd.Process.Pid).Str("path", argv[0]).Msg("child started")
	return cmdHandle{cmd: cmd}, nil
}
