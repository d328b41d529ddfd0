package ports

import (
	"context"
	"io"
)

// FileUpload carries the content and metadata of a single incoming file.
type FileUpload struct {
	// Name is the original filename as presented by the uploader.
	Name string

	// ContentType is the declared MIME type. May be empty.
	ContentType string

	// Size is the content length in bytes.
	Size int64

	// Content is the file body. The caller owns the reader and closes it.
	Content io.Reader
}

// StoredFile describes where an uploaded file ended up.
type StoredFile struct {
	// Name is the unique name the file was stored under.
	Name string

	// Location is the durable address of the stored content,
	// either a public URL or a filesystem path.
	Location string
}

// FileStore defines the contract for durable binary storage of
// order attachments and delivered content files.
type FileStore interface {
	// Save writes the upload to durable storage under a unique name
	// and returns where it landed. Returns errs.UploadFailedError
	// when the backing store rejects the write.
	Save(ctx context.Context, upload FileUpload) (StoredFile, error)
}
