// Package libpath arranges for the operating system's dynamic loader to
// resolve the child's shared libraries from the launcher's private
// location instead of the system default.
package libpath

import (
	"github.com/Paintersrp/stagehand/internal/envutil"
	"github.com/Paintersrp/stagehand/internal/launch"
)

// Configure adjusts the process environment so the forthcoming child
// resolves bundled libraries from the scratch directory when one was
// created, and from the launcher's home directory otherwise. The adjustment
// is platform specific; see the configure implementations.
func Configure(ctx *launch.Context) error {
	return configure(ctx.LibraryDir())
}

// Prepend joins dir ahead of the previous search-path value, producing no
// separator artifacts when the previous value is absent.
func Prepend(dir, sep, old string) string {
	return envutil.JoinList(dir, sep, old)
}
