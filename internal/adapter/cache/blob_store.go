package cache

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// BlobStore is a write-through cache in front of another blob store.
// It assumes it is the only writer of the underlying store.
type BlobStore struct {
	backend  port.BlobStore
	blobs    *expirable.LRU[string, []byte]
	listings *expirable.LRU[string, []string]
	mu       sync.Mutex
}

// Get implements [port.BlobStore].
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if data, exists := s.blobs.Get(key); exists {
		metrics.BlobCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return slices.Clone(data), nil
	}

	metrics.BlobCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	s.blobs.Add(key, slices.Clone(data))

	return data, nil
}

// Put implements [port.BlobStore].
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Put(ctx, key, data); err != nil {
		s.blobs.Remove(key)
		return err
	}

	s.blobs.Add(key, slices.Clone(data))

	for _, prefix := range s.listings.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.listings.Remove(prefix)
		}
	}

	return nil
}

// List implements [port.BlobStore].
func (s *BlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	if keys, exists := s.listings.Get(prefix); exists {
		metrics.BlobCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return slices.Clone(keys), nil
	}

	metrics.BlobCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.backend.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	s.listings.Add(prefix, slices.Clone(keys))

	return keys, nil
}

func NewBlobStore(backend port.BlobStore, size int, ttl time.Duration) *BlobStore {
	return &BlobStore{
		backend:  backend,
		blobs:    expirable.NewLRU[string, []byte](size, nil, ttl),
		listings: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

var _ port.BlobStore = &BlobStore{}
