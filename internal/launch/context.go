// Package launch holds the state shared across the launcher's runtime
// subsystems for a single invocation.
package launch

import "github.com/Paintersrp/stagehand/internal/config"

// Context is the per-invocation launcher state. It is owned by the launcher
// process for its whole lifetime and never persisted.
type Context struct {
	// HomeDir is the directory containing the launcher's own installed
	// files. It backs library resolution when no scratch directory exists.
	HomeDir string

	// ScratchDir is the absolute path of the private staging directory,
	// empty until one has been created. ScratchDir and ScratchCreated are
	// always updated together.
	ScratchDir     string
	ScratchCreated bool

	// ChildPID is the spawned child's process id, zero until spawn.
	ChildPID int

	// Options is the launcher's option table.
	Options *config.Options
}

// LibraryDir returns the directory the child should resolve bundled shared
// libraries from: the scratch directory when one was created, otherwise the
// launcher's home directory.
func (c *Context) LibraryDir() string {
	if c.ScratchCreated {
		return c.ScratchDir
	}
	return c.HomeDir
}
