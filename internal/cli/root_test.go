package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"run": false, "clean": false, "config": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("command %q not registered", name)
		}
	}

	if !root.SilenceUsage || !root.SilenceErrors {
		t.Fatal("root command should silence cobra's usage and error output")
	}
}

func TestCleanCommandRemovesDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "stagehand-leftover")
	if err := os.MkdirAll(filepath.Join(target, "lib"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "lib", "entry"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"clean", target})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("directory still present: %v", err)
	}
}

func TestCleanCommandReportsFailures(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"clean", filepath.Join(t.TempDir(), "absent")})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestConfigLint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stagehand.yaml")
	if err := os.WriteFile(path, []byte("ignoreSignals: true\n"), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"--options", path, "config", "lint"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err != nil {
		t.Fatalf("lint: %v", err)
	}
}

func TestConfigLintRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stagehand.yaml")
	if err := os.WriteFile(path, []byte("bogusField: 1\n"), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"--options", path, "config", "lint"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err == nil {
		t.Fatal("expected lint failure")
	}
}
