package interfaces

import (
	"context"
	"time"
)

// IFileStore abstracts the blob store holding proposal documents.
type IFileStore interface {
	// SignedDownloadURL returns a time-limited capability URL for key.
	SignedDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
