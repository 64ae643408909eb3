package uploader

import (
	"context"
	"io"
)

// Uploader pushes an image to the media host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}
