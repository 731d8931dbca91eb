package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	aferoBlob "github.com/bornholm/todoshare/internal/adapter/blob/afero"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type countingBlobStore struct {
	port.BlobStore
	gets  int
	lists int
}

func (s *countingBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.gets++
	return s.BlobStore.Get(ctx, key)
}

func (s *countingBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	s.lists++
	return s.BlobStore.List(ctx, prefix)
}

func TestBlobStore(t *testing.T) {
	ctx := context.Background()

	backend := &countingBlobStore{BlobStore: aferoBlob.NewStore(afero.NewMemMapFs())}
	store := NewBlobStore(backend, 16, time.Minute)

	if err := store.Put(ctx, "todos:alice", []byte(`[]`)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for i := 0; i < 3; i++ {
		data, err := store.Get(ctx, "todos:alice")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := `[]`, string(data); e != g {
			t.Errorf("expected %v, got %v", e, g)
		}
	}

	if e, g := 0, backend.gets; e != g {
		t.Errorf("expected %v backend gets, got %v", e, g)
	}

	keys, err := store.List(ctx, "todos:")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"todos:alice"}, keys; !reflect.DeepEqual(e, g) {
		t.Errorf("expected %v, got %v", e, g)
	}

	if err := store.Put(ctx, "todos:bob", []byte(`[]`)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	keys, err = store.List(ctx, "todos:")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := []string{"todos:alice", "todos:bob"}, keys; !reflect.DeepEqual(e, g) {
		t.Errorf("expected %v, got %v", e, g)
	}

	if e, g := 2, backend.lists; e != g {
		t.Errorf("expected %v backend lists, got %v", e, g)
	}

	if _, err := store.Get(ctx, "todos:carol"); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %+v", err)
	}
}
