package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	key := "uploads/donors/7/photo_1.jpg"
	info, err := store.Put(ctx, key, strings.NewReader("jpegbytes"), PutObjectOptions{
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, key, info.Key)
	assert.Equal(t, int64(9), info.Size)

	rc, got, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
	assert.Equal(t, int64(9), got.Size)

	require.NoError(t, store.Delete(ctx, key))
	_, _, err = store.Get(ctx, key)
	assert.True(t, os.IsNotExist(err))

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, key))
}

func TestLocalStorage_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	key := "uploads/donors/7/photo_1.jpg"
	_, err = store.Put(ctx, key, strings.NewReader("old"), PutObjectOptions{})
	require.NoError(t, err)
	_, err = store.Put(ctx, key, strings.NewReader("new"), PutObjectOptions{})
	require.NoError(t, err)

	rc, _, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	assert.Equal(t, "new", string(data))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocal(root)
	require.NoError(t, err)

	for _, key := range []string{"../outside.txt", "/etc/passwd", ".", "uploads/../../outside.txt"} {
		_, err := store.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{})
		assert.Error(t, err, "key %q should be rejected", key)
	}

	entries, err := os.ReadDir(filepath.Dir(root))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "outside.txt", e.Name())
	}
}

func TestLocalStorage_PresignGet(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	url, err := store.PresignGet(context.Background(), "uploads/donors/7/photo_1.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/donors/7/photo_1.jpg", url)
}
