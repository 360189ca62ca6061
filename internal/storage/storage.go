package storage

import (
	"context"
	"io"
	"time"
)

// DefaultPresignedURLExpiry is used when no export link lifetime is configured.
const DefaultPresignedURLExpiry = 15 * time.Minute

//go:generate mockgen -source=$GOFILE -destination=../service/storage_mocks_test.go -package=service_test

// FileStorage keeps exported workout list snapshots.
type FileStorage interface {
	PutObject(ctx context.Context, objectKey string, contentType string, body io.Reader) error
	// GeneratePresignedDownloadURL returns a link that lets anyone GET objectKey until it expires.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}
