//go:build darwin

package libpath

import (
	"fmt"

	"github.com/Paintersrp/stagehand/internal/envutil"
)

// Ambient dyld overrides can make the child load system-provided libraries
// in place of the bundled ones. The staged binaries carry
// @executable_path-relative references, so the overrides are dropped rather
// than pointed anywhere.
var dyldVars = []string{
	"DYLD_FRAMEWORK_PATH",
	"DYLD_FALLBACK_FRAMEWORK_PATH",
	"DYLD_VERSIONED_FRAMEWORK_PATH",
	"DYLD_LIBRARY_PATH",
	"DYLD_FALLBACK_LIBRARY_PATH",
	"DYLD_VERSIONED_LIBRARY_PATH",
	"DYLD_ROOT_PATH",
}

func configure(string) error {
	for _, name := range dyldVars {
		if err := envutil.Unset(name); err != nil {
			return fmt.Errorf("clear loader override: %w", err)
		}
	}
	return nil
}
