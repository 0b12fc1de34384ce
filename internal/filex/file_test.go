package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "media", "user-1")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// Idempotent.
	require.NoError(t, EnsureDir(dir))
}

func TestStoreMedia_CopiesFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "upload.jpg")
	require.NoError(t, os.WriteFile(src, []byte("image bytes"), 0o660))

	mediaDir := filepath.Join(tmp, "media")
	dst, err := StoreMedia(mediaDir, "user-1", "sub-42", src)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(mediaDir, "user-1", "sub-42.jpg"), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("image bytes"), data)
}

func TestStoreMedia_MissingSource(t *testing.T) {
	_, err := StoreMedia(t.TempDir(), "user-1", "sub-1", "/no/such/file.png")
	require.Error(t, err)
}

func TestStoreMedia_KeepsExtension(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "drawing.png")
	require.NoError(t, os.WriteFile(src, []byte("png"), 0o660))

	dst, err := StoreMedia(tmp, "u", "id", src)
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(dst))
}
