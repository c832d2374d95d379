package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
)

// LocalStore stores document files on local disk under a configured base
// directory, one subdirectory per vendor. References are paths relative to
// the base directory so records stay valid if the base moves.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a local file store rooted at baseDir
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("upload directory not configured")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Write persists the content under a fresh name and returns the stored
// reference. A short random suffix keeps every upload at a distinct path, so
// a replacement never truncates the file it supersedes before the caller has
// committed the swap.
func (s *LocalStore) Write(ctx context.Context, vendorID, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, vendorID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domainerrors.Storage("failed to create vendor directory", err)
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	stored := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)

	ref := filepath.Join(vendorID, stored)
	f, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", domainerrors.Storage("failed to create file", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(filepath.Join(s.baseDir, ref))
		return "", domainerrors.Storage("failed to write file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filepath.Join(s.baseDir, ref))
		return "", domainerrors.Storage("failed to flush file", err)
	}
	return ref, nil
}

// Delete removes a stored file; deleting an absent reference is not an error
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ref == "" {
		return nil
	}
	err := os.Remove(s.Resolve(ref))
	if err != nil && !os.IsNotExist(err) {
		return domainerrors.Storage("failed to delete file", err)
	}
	return nil
}

// Exists reports whether the reference resolves to a stored file
func (s *LocalStore) Exists(ctx context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	_, err := os.Stat(s.Resolve(ref))
	return err == nil
}

// Open returns a reader over the stored bytes
func (s *LocalStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Resolve(ref))
	if os.IsNotExist(err) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, domainerrors.Storage("failed to open file", err)
	}
	return f, nil
}

// Resolve maps a stored reference to an absolute path on disk
func (s *LocalStore) Resolve(ref string) string {
	return filepath.Join(s.baseDir, ref)
}

// BaseDir returns the configured base directory
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// StoredRef describes one file found on disk
type StoredRef struct {
	Path    string
	ModTime time.Time
}

// ListRefs walks the base directory and returns every stored reference
func (s *LocalStore) ListRefs(ctx context.Context) ([]StoredRef, error) {
	var refs []StoredRef
	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		refs = append(refs, StoredRef{Path: rel, ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refs, nil
}
