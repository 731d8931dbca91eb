package port

import (
	"context"
)

// BlobStore is a key addressed store of opaque documents.
type BlobStore interface {
	// Get returns the content associated with the key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or fully overwrites the content associated with the key
	Put(ctx context.Context, key string, data []byte) error

	// List returns the keys starting with the given prefix, in lexical order
	List(ctx context.Context, prefix string) ([]string, error)
}
