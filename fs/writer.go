// Package fs provides filesystem storage for downloaded resources.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docgrab"
)

// Ensure Writer implements docgrab.FileWriter at compile time.
var _ docgrab.FileWriter = (*Writer)(nil)

// Writer writes resource bodies to disk, creating parent directories
// as needed.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes data to path. Parent directories are created
// implicitly; the planner guarantees paths stay under the download root.
func (w *Writer) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Exists reports whether a file already exists at path.
func (w *Writer) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
