//go:build !windows

package scratch

import (
	"os"
	"path/filepath"

	"github.com/Paintersrp/stagehand/internal/envutil"
	"github.com/Paintersrp/stagehand/internal/trace"
)

// create picks the first base candidate in which an atomically created
// unique directory succeeds. An explicit override is the sole candidate.
func (m *Manager) create(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", err
		}
		return os.MkdirTemp(abs, namePrefix+"*")
	}

	for _, base := range m.candidates() {
		dir, err := os.MkdirTemp(base, namePrefix+"*")
		if err != nil {
			m.failedAttempts++
			trace.Log().Debug().Str("base", base).Err(err).Msg("scratch candidate unusable")
			continue
		}
		return dir, nil
	}
	return "", errNoCandidate
}

// defaultCandidates probes the conventional temp variables first, then the
// fixed fallback paths. TMPDIR is usually set on macOS.
func defaultCandidates() []string {
	var dirs []string
	for _, name := range []string{"TMPDIR", "TEMP", "TMP"} {
		if v, ok := envutil.Get(name); ok {
			dirs = append(dirs, v)
		}
	}
	return append(dirs, "/tmp", "/var/tmp", "/usr/tmp")
}
