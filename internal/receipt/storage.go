package receipt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMissingInput is returned when the receipt text does not exist
var ErrMissingInput = errors.New("receipt text not found")

// Source defines the interface for reading raw receipt text
type Source interface {
	// Get retrieves the raw bytes of a receipt by name
	Get(name string) ([]byte, error)
}

// LocalSource implements the Source interface using the local filesystem
type LocalSource struct {
	basePath string
}

// NewLocalSource creates a new LocalSource reading from basePath
func NewLocalSource(basePath string) *LocalSource {
	return &LocalSource{
		basePath: basePath,
	}
}

// Path returns where a receipt with the given name is read from
func (l *LocalSource) Path(name string) string {
	return filepath.Join(l.basePath, name)
}

// Get reads a receipt file from the base directory
func (l *LocalSource) Get(name string) ([]byte, error) {
	fullPath := l.Path(name)
	data, err := os.ReadFile(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, fullPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}
