package service

import (
	"context"
	"strings"
	"testing"

	"foodbridge/internal/storage"
	storeMocks "foodbridge/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttacher_Attach(t *testing.T) {
	ctx := context.Background()

	t.Run("key shape", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/donors/12/photo_") && strings.HasSuffix(key, ".png")
		}), mock.Anything, storage.PutObjectOptions{
			Size:        4,
			ContentType: "image/png",
			Metadata:    map[string]string{"original-filename": "me.png"},
		}).Return(storage.ObjectInfo{}, nil)

		a := NewAttacher(mStore)
		p, err := a.Attach(ctx, "donors", 12, &Upload{
			Reader:      strings.NewReader("pngx"),
			Filename:    "me.png",
			Size:        4,
			ContentType: "image/png",
		}, "photo")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p, "/uploads/donors/12/photo_"))
		mStore.AssertExpectations(t)
	})

	t.Run("label is sanitized", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/donors/3/org_cert_")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)

		a := NewAttacher(mStore)
		p, err := a.Attach(ctx, "donors", 3, &Upload{
			Reader: strings.NewReader("x"),
			Size:   1,
		}, "org cert!")

		require.NoError(t, err)
		assert.Contains(t, p, "/uploads/donors/3/org_cert_")
		assert.NotContains(t, p, " ")
		assert.NotContains(t, p, "!")
	})

	t.Run("nil upload", func(t *testing.T) {
		a := NewAttacher(new(storeMocks.MockStorage))
		_, err := a.Attach(ctx, "donors", 1, nil, "photo")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("zero size upload", func(t *testing.T) {
		a := NewAttacher(new(storeMocks.MockStorage))
		_, err := a.Attach(ctx, "donors", 1, &Upload{Filename: "empty.txt"}, "photo")
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}
