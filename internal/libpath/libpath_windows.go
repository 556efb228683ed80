//go:build windows

package libpath

// Bundled DLLs resolve from the executable's own directory; the loader
// needs no environment hint.
func configure(string) error {
	return nil
}
