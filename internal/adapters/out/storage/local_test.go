package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_Save(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	upload := ports.FileUpload{
		Name:        "logo draft.png",
		ContentType: "image/png",
		Size:        9,
		Content:     strings.NewReader("png bytes"),
	}

	stored, err := store.Save(t.Context(), upload)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Name, "-logo_draft.png"), "stored name %q", stored.Name)
	assert.Equal(t, stored.Name, filepath.Base(stored.Location))

	content, err := os.ReadFile(stored.Location)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))
}

func TestLocalFileStore_Save_UniqueNamesForSameFile(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(t.Context(), ports.FileUpload{
		Name: "brief.pdf", Content: strings.NewReader("a"),
	})
	require.NoError(t, err)

	second, err := store.Save(t.Context(), ports.FileUpload{
		Name: "brief.pdf", Content: strings.NewReader("b"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Name, second.Name)
}

func TestLocalFileStore_Save_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)

	stored, err := store.Save(t.Context(), ports.FileUpload{
		Name:    "../../etc/passwd",
		Content: strings.NewReader("nope"),
	})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(stored.Location))
	assert.True(t, strings.HasSuffix(stored.Name, "-passwd"))
}

func TestLocalFileStore_Save_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}

	dir := t.TempDir()
	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err = store.Save(t.Context(), ports.FileUpload{
		Name: "logo.png", Content: strings.NewReader("x"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUploadFailed)
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"logo.png":          "logo.png",
		"logo draft v2.png": "logo_draft_v2.png",
		"über.png":          "_ber.png",
		"a/b/c.png":         "c.png",
		`a\b\c.png`:         "c.png",
		"":                  "file",
	}

	for in, want := range cases {
		assert.Equal(t, want, sanitizeName(in), "input %q", in)
	}
}
