package afero

import (
	"context"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const tmpSuffix = ".tmp"

// Store persists each blob as a single file whose name is the
// query-escaped key.
type Store struct {
	fs afero.Fs
}

// Get implements port.BlobStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := afero.ReadFile(s.fs, encodeKey(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return data, nil
}

// Put implements port.BlobStore.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	filename := encodeKey(key)
	tmpFilename := "." + filename + tmpSuffix

	if err := afero.WriteFile(s.fs, tmpFilename, data, 0o640); err != nil {
		return errors.Wrapf(err, "could not write blob '%s'", key)
	}

	if err := s.fs.Rename(tmpFilename, filename); err != nil {
		return errors.Wrapf(err, "could not commit blob '%s'", key)
	}

	return nil
}

// List implements port.BlobStore.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	entries, err := afero.ReadDir(s.fs, ".")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		key, err := decodeKey(e.Name())
		if err != nil {
			continue
		}

		if !strings.HasPrefix(key, prefix) {
			continue
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys, nil
}

func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

func encodeKey(key string) string {
	return url.QueryEscape(key)
}

func decodeKey(filename string) (string, error) {
	key, err := url.QueryUnescape(filename)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return key, nil
}

var _ port.BlobStore = &Store{}
