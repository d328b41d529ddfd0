// Package storage provides FileStore implementations for durable binary
// storage of uploaded assets. Two backends are available: a Supabase bucket
// for deployments and a local directory for development and tests.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	storagego "github.com/supabase-community/storage-go"
)

// SupabaseFileStore stores uploads in a Supabase storage bucket and returns
// their public URLs as locations.
type SupabaseFileStore struct {
	client  *storagego.Client
	bucket  string
	baseURL string
}

// NewSupabaseFileStore creates a FileStore backed by a Supabase bucket.
// supabaseURL is the project base URL, serviceRoleKey the service role secret.
func NewSupabaseFileStore(supabaseURL, serviceRoleKey, bucket string) *SupabaseFileStore {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storagego.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &SupabaseFileStore{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Save uploads the file under a generated unique name.
// Returns errs.UploadFailedError when the bucket rejects the write.
func (s *SupabaseFileStore) Save(_ context.Context, upload ports.FileUpload) (ports.StoredFile, error) {
	name := uniqueName(upload.Name)

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.UploadFile(s.bucket, name, upload.Content, storagego.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return ports.StoredFile{}, errs.NewUploadFailedErrorWithCause(upload.Name, err)
	}

	return ports.StoredFile{
		Name:     name,
		Location: fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, name),
	}, nil
}

// uniqueName derives a collision-free stored name from the original filename.
// The unix timestamp and random suffix keep repeated uploads of the same
// file distinct while the original name stays recognizable.
func uniqueName(original string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().Unix(), randomSuffix(), sanitizeName(original))
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xffffffff)
	}
	return hex.EncodeToString(buf)
}

// sanitizeName strips directory components and characters that are unsafe
// in object keys or filesystem paths.
func sanitizeName(original string) string {
	base := path.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
