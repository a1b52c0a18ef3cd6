package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"foodbridge/internal/service"
)

// formFiles collects multipart file fields and keeps their open handles so a
// single deferred Close releases everything after the service call.
type formFiles struct {
	closers []io.Closer
}

// take opens the named multipart field. An absent field yields a nil upload
// with no error so callers can treat every attachment as optional; a body
// that fails to parse as multipart is reported as an error.
func (f *formFiles) take(c *fiber.Ctx, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, file)

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &service.Upload{
		Reader:      file,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: ct,
	}, nil
}

func (f *formFiles) Close() {
	for _, c := range f.closers {
		c.Close()
	}
}
