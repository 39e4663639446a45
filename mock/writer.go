package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of docgrab.FileWriter.
type FileWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) error
	ExistsFn    func(path string) bool
}

func (w *FileWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileFn(ctx, path, data)
}

func (w *FileWriter) Exists(path string) bool {
	if w.ExistsFn == nil {
		return false
	}
	return w.ExistsFn(path)
}
