// Package stage provides the filesystem primitives used to materialize
// payload files under the scratch directory.
package stage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Paintersrp/stagehand/internal/trace"
)

// OpenTarget opens the file at rel beneath base for writing, creating
// intermediate directories with owner-only permissions as needed. A regular
// file already present at the final path is unexpected for a fresh scratch
// directory; it is logged and then truncated.
func OpenTarget(base, rel string) (*os.File, error) {
	path := filepath.Join(base, filepath.FromSlash(rel))

	if dir := filepath.Dir(path); dir != base {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create staging directories: %w", err)
		}
	}

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		trace.Log().Warn().Str("path", path).Msg("staged file already exists but should not")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open staging target: %w", err)
	}
	return f, nil
}

// CopyFile copies src to the file at name beneath dst, streaming in small
// chunks so large payload entries never sit fully in memory.
func CopyFile(src, dst, name string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := OpenTarget(dst, name)
	if err != nil {
		return err
	}

	buf := make([]byte, 4096)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", name, err)
	}

	markStaged(out)

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
