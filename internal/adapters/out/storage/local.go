package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// LocalFileStore stores uploads in a directory on the local filesystem and
// returns absolute file paths as locations. Intended for development and
// tests; deployments use SupabaseFileStore.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates a FileStore writing into dir.
// The directory is created if it does not exist.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &LocalFileStore{dir: dir}, nil
}

// Save writes the file under a generated unique name inside the store's
// directory. Returns errs.UploadFailedError when the write fails.
func (s *LocalFileStore) Save(_ context.Context, upload ports.FileUpload) (ports.StoredFile, error) {
	name := uniqueName(upload.Name)
	target := filepath.Join(s.dir, name)

	out, err := os.Create(target)
	if err != nil {
		return ports.StoredFile{}, errs.NewUploadFailedErrorWithCause(upload.Name, err)
	}

	if _, err = io.Copy(out, upload.Content); err != nil {
		out.Close()
		os.Remove(target)
		return ports.StoredFile{}, errs.NewUploadFailedErrorWithCause(upload.Name, err)
	}

	if err = out.Close(); err != nil {
		os.Remove(target)
		return ports.StoredFile{}, errs.NewUploadFailedErrorWithCause(upload.Name, err)
	}

	return ports.StoredFile{
		Name:     name,
		Location: target,
	}, nil
}
