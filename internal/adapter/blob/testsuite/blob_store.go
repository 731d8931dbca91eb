package testsuite

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
)

// TestBlobStore runs the common contract checks against the store
// resolved from the given dsn.
func TestBlobStore(t *testing.T, dsn string) {
	t.Logf("Using store '%s'", dsn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := blob.New(ctx, dsn)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Run("GetMissingKey", func(t *testing.T) {
		_, err := store.Get(ctx, "todos:missing")
		if !errors.Is(err, port.ErrNotFound) {
			t.Errorf("expected port.ErrNotFound, got %+v", err)
		}
	})

	t.Run("PutThenGet", func(t *testing.T) {
		data := []byte(`[{"id":"1","text":"buy milk"}]`)

		if err := store.Put(ctx, "todos:alice", data); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		got, err := store.Get(ctx, "todos:alice")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := string(data), string(got); e != g {
			t.Errorf("expected %v, got %v", e, g)
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		if err := store.Put(ctx, "admin:share_links", []byte(`{}`)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if err := store.Put(ctx, "admin:share_links", []byte(`{"a1b2c3d4":{}}`)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		got, err := store.Get(ctx, "admin:share_links")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := `{"a1b2c3d4":{}}`, string(got); e != g {
			t.Errorf("expected %v, got %v", e, g)
		}
	})

	t.Run("ListByPrefix", func(t *testing.T) {
		for _, key := range []string{"todos:public", "todos:bob", "system:deleted_todos"} {
			if err := store.Put(ctx, key, []byte(`[]`)); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		}

		keys, err := store.List(ctx, "todos:")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		expected := []string{"todos:alice", "todos:bob", "todos:public"}
		if !reflect.DeepEqual(expected, keys) {
			t.Errorf("expected %v, got %v", expected, keys)
		}
	})
}
