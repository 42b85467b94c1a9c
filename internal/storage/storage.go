package storage

import (
	"context"
	"io"
)

// Storage is the interface for file storage operations. Profile media goes
// through it; the rest of the system only ever sees /uploads/... references.
type Storage interface {
	// Save stores a file at the given path relative to the storage root.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	BasePath string // uploads directory on disk
	BaseURL  string // public prefix, e.g. /uploads
}

// NewStorage creates the storage backing the /uploads tree.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
