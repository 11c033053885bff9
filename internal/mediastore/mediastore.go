package mediastore

import (
	"context"
	"io"
)

// Store holds the raw bytes of uploaded media. Keys are opaque storage
// identifiers; the catalog records them as /media/<key> URLs.
type Store interface {
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
