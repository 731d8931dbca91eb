package minio

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const codeNoSuchKey = "NoSuchKey"

type Store struct {
	basePath string
	bucket   string
	client   *minio.Client
}

// Get implements port.BlobStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translateError(err)
	}

	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, s.translateError(err)
	}

	return data, nil
}

// Put implements port.BlobStore.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(
		ctx, s.bucket, s.objectName(key),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return errors.Wrapf(err, "could not put object '%s'", key)
	}

	return nil
}

// List implements port.BlobStore.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.objectName(prefix),
		Recursive: true,
	})

	keys := make([]string, 0)
	for obj := range objects {
		if obj.Err != nil {
			return nil, errors.WithStack(obj.Err)
		}

		keys = append(keys, strings.TrimPrefix(obj.Key, s.basePath))
	}

	sort.Strings(keys)

	return keys, nil
}

func (s *Store) objectName(key string) string {
	return s.basePath + key
}

func (s *Store) translateError(err error) error {
	if minio.ToErrorResponse(err).Code == codeNoSuchKey {
		return errors.WithStack(port.ErrNotFound)
	}

	return errors.WithStack(err)
}

func New(client *minio.Client, bucket string, basePath string) *Store {
	basePath = strings.Trim(basePath, "/")
	if basePath != "" {
		basePath += "/"
	}

	return &Store{
		bucket:   bucket,
		client:   client,
		basePath: basePath,
	}
}

var _ port.BlobStore = &Store{}
