// Package config loads the launcher's runtime options and exposes them as a
// flat option table consulted by the runtime subsystems.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/stagehand/internal/envutil"
)

// Option names understood by the runtime subsystems.
const (
	// OptionRuntimeTmpdir overrides the base directory used for the
	// scratch directory.
	OptionRuntimeTmpdir = "runtime-tmpdir"
	// OptionIgnoreSignals makes the supervisor swallow relayed signals
	// instead of forwarding them to the child.
	OptionIgnoreSignals = "ignore-signals"
)

// Environment overrides for the option table. These win over the options
// file so a deployed bundle can be adjusted without repacking.
const (
	envRuntimeTmpdir = "STAGEHAND_RUNTIME_TMPDIR"
	envIgnoreSignals = "STAGEHAND_IGNORE_SIGNALS"
)

// File is a decoded launcher options file.
type File struct {
	RuntimeTmpdir string            `yaml:"runtimeTmpdir"`
	IgnoreSignals bool              `yaml:"ignoreSignals"`
	Workdir       string            `yaml:"workdir"`
	Env           map[string]string `yaml:"env"`
}

// Load reads a launcher options file from the provided path. Workdir is
// resolved relative to the file's directory and environment references in
// string values are expanded.
func Load(path string) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve options path: %w", err)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	var doc File
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", absPath, err)
	}

	if doc.Workdir != "" {
		workdir := os.ExpandEnv(doc.Workdir)
		if !filepath.IsAbs(workdir) {
			workdir = filepath.Clean(filepath.Join(filepath.Dir(absPath), workdir))
		}
		doc.Workdir = workdir
	}
	if doc.RuntimeTmpdir != "" {
		doc.RuntimeTmpdir = os.ExpandEnv(doc.RuntimeTmpdir)
	}
	for k, v := range doc.Env {
		doc.Env[k] = os.ExpandEnv(v)
	}

	return &doc, nil
}

// Options is the option table consulted by the runtime subsystems.
type Options struct {
	values  map[string]string
	workdir string
	env     map[string]string
}

// Resolve builds the option table from an options file (which may be nil)
// and the STAGEHAND_* environment overrides.
func Resolve(f *File) *Options {
	opts := &Options{values: make(map[string]string)}

	if f != nil {
		if f.RuntimeTmpdir != "" {
			opts.values[OptionRuntimeTmpdir] = f.RuntimeTmpdir
		}
		if f.IgnoreSignals {
			opts.values[OptionIgnoreSignals] = "1"
		}
		opts.workdir = f.Workdir
		opts.env = f.Env
	}

	if v, ok := envutil.Get(envRuntimeTmpdir); ok {
		opts.values[OptionRuntimeTmpdir] = v
	}
	if v, ok := envutil.Get(envIgnoreSignals); ok {
		if v == "0" {
			delete(opts.values, OptionIgnoreSignals)
		} else {
			opts.values[OptionIgnoreSignals] = "1"
		}
	}

	return opts
}

// Lookup returns the named option's value and whether it is set.
func (o *Options) Lookup(name string) (string, bool) {
	v, ok := o.values[name]
	return v, ok
}

// IsSet reports whether the named option is set.
func (o *Options) IsSet(name string) bool {
	_, ok := o.values[name]
	return ok
}

// Workdir returns the working directory for the child, empty when unset.
func (o *Options) Workdir() string {
	return o.workdir
}

// Env returns extra environment variables for the child.
func (o *Options) Env() map[string]string {
	return o.env
}
