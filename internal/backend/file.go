package backend

import (
	"context"
	"fmt"
	"os"

	"github.com/paperwatch/paperwatch/internal/models"
)

// FileSource reads a log list exported by the backend to a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Endpoint returns the file path.
func (f *FileSource) Endpoint() string {
	return f.path
}

// Path returns the file path.
func (f *FileSource) Path() string {
	return f.path
}

// FetchLogs reads and decodes the file.
func (f *FileSource) FetchLogs(ctx context.Context) (models.LogList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer fh.Close()

	list, err := decodeList(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return list, nil
}
