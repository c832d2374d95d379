package repositories

import (
	"context"
	"io"
)

// FileStore abstracts document byte storage addressable by a stable path
type FileStore interface {
	// Write persists the content and returns the stored reference
	Write(ctx context.Context, vendorID, filename string, content io.Reader) (string, error)
	// Delete removes a stored file; deleting an absent reference is not an
	// error
	Delete(ctx context.Context, ref string) error
	Exists(ctx context.Context, ref string) bool
	// Open returns a reader over the stored bytes
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}
