//go:build !windows

package supervise

import (
	"fmt"
	"os"

	"github.com/Paintersrp/stagehand/internal/envutil"
	"github.com/Paintersrp/stagehand/internal/trace"
)

type unixSpawner struct{}

// NewSpawner returns the platform spawner.
func NewSpawner() Spawner {
	return unixSpawner{}
}

func (unixSpawner) Spawn(argv []string, opts SpawnOptions) (Handle, error) {
	target := argv

	// A socket-activated launcher inherits LISTEN_PID naming the wrong
	// process. Route the spawn through the activation helper hop, which
	// rewrites the variable to its own pid before replacing itself with
	// the target image.
	helper := false
	if _, ok := envutil.Get(listenPIDVar); ok {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locate launcher binary: %w", err)
		}
		trace.Log().Debug().Str("helper", self).Msg("routing spawn through activation helper")
		target = append([]string{self}, argv...)
		helper = true
	}

	cmd := newCommand(target, opts)
	if helper {
		cmd.Env = append(cmd.Environ(), helperEnvVar+"=1")
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start child: %w", err)
	}
	trace.Log().Debug().Int("pid", cmd.Process.Pid).Str("path", argv[0]).Msg("child started")
	return cmdHandle{cmd: cmd}, nil
}
