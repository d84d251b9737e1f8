// Zip packager for the export command.
package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dukaforge/chronicler/internal/export"
)

// zipPackager writes export files into a single zip archive. Entry names
// keep the forward-slash archive paths produced by the generator.
type zipPackager struct {
	path string
}

func (p zipPackager) Pack(files []export.File) error {
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create archive dir: %w", err)
		}
	}

	out, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	w := zip.NewWriter(out)
	for _, f := range files {
		entry, err := w.Create(f.Path)
		if err != nil {
			out.Close()
			return fmt.Errorf("add %s: %w", f.Path, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	if err := w.Close(); err != nil {
		out.Close()
		return fmt.Errorf("finalize archive: %w", err)
	}
	return out.Close()
}
