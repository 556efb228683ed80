//go:build !windows

package supervise

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/Paintersrp/stagehand/internal/envutil"
)

// listenPIDVar is the service-manager variable telling a socket-activated
// process which pid the inherited sockets belong to.
const listenPIDVar = "LISTEN_PID"

// helperEnvVar marks a launcher process as the activation-helper hop.
const helperEnvVar = "STAGEHAND_ACTIVATION_HELPER"

// IsActivationHelper reports whether this process was started as the
// socket-activation helper hop rather than as the launcher proper.
func IsActivationHelper() bool {
	_, ok := envutil.Get(helperEnvVar)
	return ok
}

// RunActivationHelper rewrites LISTEN_PID to this process's own pid and
// replaces the process image with the target command. It returns only on
// failure.
func RunActivationHelper(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("activation helper: empty argument list")
	}
	if err := envutil.Unset(helperEnvVar); err != nil {
		return err
	}
	if err := rewriteListenPID(); err != nil {
		return err
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("activation helper: %w", err)
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}

func rewriteListenPID() error {
	if _, ok := envutil.Get(listenPIDVar); !ok {
		return nil
	}
	return envutil.Set(listenPIDVar, strconv.Itoa(os.Getpid()))
}
