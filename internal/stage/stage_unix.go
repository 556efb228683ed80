//go:build !windows

package stage

import "os"

// Staged files are private to the owner and may be shared libraries or
// helper executables, so they get the execute bit.
func markStaged(f *os.File) {
	_ = f.Chmod(0o700)
}
