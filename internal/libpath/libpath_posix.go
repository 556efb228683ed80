//go:build !windows && !darwin

package libpath

import (
	"fmt"
	"os"

	"github.com/Paintersrp/stagehand/internal/envutil"
	"github.com/Paintersrp/stagehand/internal/trace"
)

// configure prepends dir to the loader search variable. The previous value
// is preserved under a sibling _ORIG variable so the staged application can
// restore it before spawning subprocesses that must not see the private
// library path (a forked system ssh, say, needs the system libraries).
func configure(dir string) error {
	old, ok := envutil.Get(searchVar)
	if ok {
		if err := envutil.Set(searchVar+"_ORIG", old); err != nil {
			return fmt.Errorf("preserve %s: %w", searchVar, err)
		}
		trace.Log().Debug().Str("var", searchVar+"_ORIG").Str("value", old).Msg("library search path saved")
	}

	joined := Prepend(dir, string(os.PathListSeparator), old)
	if err := envutil.Set(searchVar, joined); err != nil {
		return fmt.Errorf("set %s: %w", searchVar, err)
	}
	trace.Log().Debug().Str("var", searchVar).Str("value", joined).Msg("library search path set")
	return nil
}
