package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"foodbridge/internal/storage"
)

// Upload carries the content of one multipart file from the HTTP layer.
type Upload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// labelSanitizer strips everything a label may not contribute to a filename.
var labelSanitizer = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Attacher stores uploaded binary assets and returns the relative path kept
// on the owning record. Keys are namespaced per entity directory and owner
// id: uploads/<entityDir>/<ownerID>/<label>_<unixMilli><ext>.
type Attacher struct {
	store storage.Storage
}

// NewAttacher constructs an Attacher over the given storage backend.
func NewAttacher(store storage.Storage) *Attacher {
	return &Attacher{store: store}
}

// Attach writes the upload and returns the stored relative path
// (e.g. "/uploads/donors/12/photo_1712345678901.jpg"). Empty uploads are
// rejected with ErrEmptyFile before anything is written. The millisecond
// timestamp in the name makes collisions effectively impossible; on the off
// chance of one, the backend overwrites.
func (a *Attacher) Attach(ctx context.Context, entityDir string, ownerID int64, up *Upload, label string) (string, error) {
	if up == nil || up.Size == 0 {
		return "", ErrEmptyFile
	}

	ext := filepath.Ext(up.Filename)
	name := labelSanitizer.ReplaceAllString(label, "_") + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + ext
	key := path.Join("uploads", entityDir, strconv.FormatInt(ownerID, 10), name)

	_, err := a.store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata: map[string]string{
			"original-filename": up.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("store attachment: %w", err)
	}
	return "/" + key, nil
}
