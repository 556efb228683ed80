//go:build windows

package scratch

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Paintersrp/stagehand/internal/envutil"
	"github.com/Paintersrp/stagehand/internal/trace"
)

// Windows has no race-free make-unique-directory primitive: generate a name
// and attempt creation, retrying a bounded number of times per candidate.
const createAttempts = 5

func (m *Manager) create(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", err
		}
		// Later logic must see the ambient TMP, so the override is only
		// installed around the creation attempts.
		restore := transientTMP(abs)
		defer restore()
		return m.tryBases([]string{abs})
	}
	return m.tryBases(m.candidates())
}

func (m *Manager) tryBases(bases []string) (string, error) {
	for _, base := range bases {
		for i := 0; i < createAttempts; i++ {
			name := namePrefix + strconv.Itoa(os.Getpid()) + "-" + randomSuffix()
			dir := filepath.Join(base, name)
			if err := os.Mkdir(dir, 0o700); err == nil {
				return dir, nil
			}
		}
		m.failedAttempts++
		trace.Log().Debug().Str("base", base).Msg("scratch candidate unusable")
	}
	return "", errNoCandidate
}

func randomSuffix() string {
	return fmt.Sprintf("%08x", rand.Uint32())
}

// transientTMP points TMP at dir and returns a restore function that
// reinstates the previous state regardless of how creation went.
func transientTMP(dir string) func() {
	orig, had := envutil.Get("TMP")
	if err := envutil.Set("TMP", dir); err != nil {
		trace.Log().Warn().Err(err).Msg("override TMP")
	}
	return func() {
		if had {
			_ = envutil.Set("TMP", orig)
		} else {
			_ = envutil.Unset("TMP")
		}
	}
}

func defaultCandidates() []string {
	return []string{os.TempDir()}
}
