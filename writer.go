package docgrab

import "context"

// FileWriter persists downloaded resource bodies.
type FileWriter interface {
	// WriteFile writes data to path, creating parent directories as needed.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Exists reports whether a file already exists at path.
	Exists(path string) bool
}
