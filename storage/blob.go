package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when a key does not exist in the store
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored blob together with its metadata
type Object struct {
	Key         string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// BlobStore is the object storage consumed by the photo submission pipeline.
// Keys follow the scheme competitions/{competitionID}/photos/{photoID}.{ext}.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// Default is the blob store used by the handlers, configured at startup
var Default BlobStore
