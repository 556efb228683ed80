//go:build !windows

package supervise

import (
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/Paintersrp/stagehand/internal/launch"
)

// trapScript builds a shell child that reports startup via startFile, exits
// with code 7 after handling SIGUSR1 (touching doneFile), and exits 0 on
// its own after roughly a second otherwise.
func trapScript(startFile, doneFile string) string {
	return "touch " + startFile + "; " +
		"trap 'touch " + doneFile + "; exit 7' USR1; " +
		"i=0; while [ $i -lt 20 ]; do sleep 0.05; i=$((i+1)); done; exit 0"
}

func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", path)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// shieldSignal keeps sig from killing the test binary while a test races
// signal delivery against relay installation.
func shieldSignal(t *testing.T, sig os.Signal) {
	t.Helper()
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, sig)
	t.Cleanup(func() { signal.Stop(ch) })
}

func TestSignalForwardedToChild(t *testing.T) {
	dir := t.TempDir()
	startFile := filepath.Join(dir, "started")
	doneFile := filepath.Join(dir, "handled")

	shieldSignal(t, syscall.SIGUSR1)

	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for {
			if _, err := os.Stat(startFile); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		// Leave room for the relay to be installed after spawn.
		time.Sleep(150 * time.Millisecond)
		_ = unix.Kill(os.Getpid(), syscall.SIGUSR1)
	}()

	sup := New(Config{})
	res, err := sup.Run(&launch.Context{}, []string{"/bin/sh", "-c", trapScript(startFile, doneFile)})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !res.Exited() || res.Code != 7 {
		t.Fatalf("result = %+v, want exit code 7 from the USR1 trap", res)
	}
	waitForFile(t, doneFile)
}

func TestIgnoreSignalsSwallowsInsteadOfForwarding(t *testing.T) {
	dir := t.TempDir()
	startFile := filepath.Join(dir, "started")
	doneFile := filepath.Join(dir, "handled")

	shieldSignal(t, syscall.SIGUSR1)

	go func() {
		deadline := time.Now().Add(2 * time.Second)
		for {
			if _, err := os.Stat(startFile); err == nil {
				break
			}
			if time.Now().After(deadline) {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		time.Sleep(150 * time.Millisecond)
		_ = unix.Kill(os.Getpid(), syscall.SIGUSR1)
	}()

	sup := New(Config{IgnoreSignals: true})
	res, err := sup.Run(&launch.Context{}, []string{"/bin/sh", "-c", trapScript(startFile, doneFile)})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !res.Exited() || res.Code != 0 {
		t.Fatalf("result = %+v, want the child's own exit 0", res)
	}
	if _, err := os.Stat(doneFile); !os.IsNotExist(err) {
		t.Fatalf("child observed the signal despite ignore mode: %v", err)
	}
}

func TestRelayTeardownRestoresDefaults(t *testing.T) {
	dir := t.TempDir()
	startFile := filepath.Join(dir, "started")
	doneFile := filepath.Join(dir, "winch")

	// SIGWINCH is default-ignored, so it is safe to deliver after the
	// relay is gone.
	script := "touch " + startFile + "; " +
		"trap 'touch " + doneFile + "' WINCH; " +
		"i=0; while [ $i -lt 40 ]; do sleep 0.05; i=$((i+1)); done"
	cmd := exec.Command("/bin/sh", "-c", script)
	if err := cmd.Start(); err != nil {
		t.Fatalf("start child: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	})
	waitForFile(t, startFile)

	sup := New(Config{})
	stop := sup.installRelay(cmd.Process.Pid)

	if err := unix.Kill(os.Getpid(), syscall.SIGWINCH); err != nil {
		t.Fatalf("raise SIGWINCH: %v", err)
	}
	waitForFile(t, doneFile)

	stop()
	stop() // idempotent

	if err := os.Remove(doneFile); err != nil {
		t.Fatalf("reset marker: %v", err)
	}
	if err := unix.Kill(os.Getpid(), syscall.SIGWINCH); err != nil {
		t.Fatalf("raise SIGWINCH: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if _, err := os.Stat(doneFile); !os.IsNotExist(err) {
		t.Fatalf("signal still relayed after teardown: %v", err)
	}
}

func TestRelayedSignalsExcludeChildNotification(t *testing.T) {
	for _, sig := range relayedSignals() {
		switch sig {
		case syscall.SIGCHLD, syscall.SIGKILL, syscall.SIGSTOP, syscall.SIGURG, syscall.SIGPIPE:
			t.Fatalf("%v must not be relayed", sig)
		}
	}
}

func TestRewriteListenPID(t *testing.T) {
	t.Setenv(listenPIDVar, "99999")

	if err := rewriteListenPID(); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if got := os.Getenv(listenPIDVar); got != strconv.Itoa(os.Getpid()) {
		t.Fatalf("%s = %q, want this process's pid", listenPIDVar, got)
	}
}

func TestRewriteListenPIDAbsent(t *testing.T) {
	t.Setenv(listenPIDVar, "")
	os.Unsetenv(listenPIDVar)

	if err := rewriteListenPID(); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, ok := os.LookupEnv(listenPIDVar); ok {
		t.Fatalf("%s appeared without being inherited", listenPIDVar)
	}
}

func TestIsActivationHelper(t *testing.T) {
	t.Setenv(helperEnvVar, "")
	if IsActivationHelper() {
		t.Fatal("helper detected without marker")
	}
	t.Setenv(helperEnvVar, "1")
	if !IsActivationHelper() {
		t.Fatal("helper marker not detected")
	}
}

func TestRunActivationHelperMissingTarget(t *testing.T) {
	t.Setenv(helperEnvVar, "1")
	t.Setenv(listenPIDVar, "")

	err := RunActivationHelper([]string{filepath.Join(t.TempDir(), "missing-binary")})
	if err == nil {
		t.Fatal("expected error for missing target")
	}
}
