package supervise

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// SpawnOptions carries the child's working directory and extra environment
// variables, both optional.
type SpawnOptions struct {
	Dir string
	Env map[string]string
}

// Handle is a running child process.
type Handle interface {
	// PID returns the child's process id.
	PID() int
	// Wait blocks until the child terminates and maps the OS status into
	// a Result. It must be called exactly once.
	Wait() Result
}

// Spawner creates the child process with the launcher's standard streams
// inherited. Implementations are selected at build time; the supervision
// loop is written once against this interface.
type Spawner interface {
	Spawn(argv []string, opts SpawnOptions) (Handle, error)
}

func newCommand(argv []string, opts SpawnOptions) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		env := os.Environ()
		for k, v := range opts.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
	}
	return cmd
}

type cmdHandle struct {
	cmd *exec.Cmd
}

func (h cmdHandle) PID() int {
	return h.cmd.Process.Pid
}

func (h cmdHandle) Wait() Result {
	err := h.cmd.Wait()
	if err == nil {
		return Result{Code: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return Result{Signal: status.Signal()}
		}
		return Result{Code: exitErr.ExitCode()}
	}
	return Result{WaitErr: err}
}
