package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader errors mid-stream, like a client dropping the connection.
type failingReader struct{}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("stream interrupted")
}

func TestStoreSave(t *testing.T) {
	t.Run("writes bytes under the category folder", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)

		ref, err := store.Save("image/png", "photo.png", strings.NewReader("png-bytes"))
		require.NoError(t, err)

		assert.Equal(t, CategoryImage, ref.Category)
		assert.True(t, strings.HasSuffix(ref.Name, ".png"))
		assert.Equal(t, filepath.Join(CategoryImage, ref.Name), ref.Path)

		data, err := os.ReadFile(filepath.Join(root, ref.Path))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("creates the category directory on first use", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)

		_, err := store.Save("application/pdf", "doc.pdf", strings.NewReader("%PDF"))
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(root, CategoryPDF))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("interrupted write leaves no partial upload behind", func(t *testing.T) {
		root := t.TempDir()
		store := NewStore(root)

		_, err := store.Save("image/png", "photo.png", &failingReader{})
		require.Error(t, err)

		// The half-written file must be removed: a partial upload must never
		// be counted as success, so nothing may reference it.
		entries, err := os.ReadDir(filepath.Join(root, CategoryImage))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("fails when the root is not writable", func(t *testing.T) {
		root := t.TempDir()
		blocked := filepath.Join(root, "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("file, not dir"), 0o644))

		store := NewStore(blocked)
		_, err := store.Save("image/png", "photo.png", strings.NewReader("png-bytes"))
		assert.Error(t, err)
	})
}
