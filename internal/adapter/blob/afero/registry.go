package afero

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func init() {
	blob.RegisterStoreFactory("memory", MemoryFromDSN)
	blob.RegisterStoreFactory("local", LocalFromDSN)
}

func MemoryFromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	return NewStore(afero.NewMemMapFs()), nil
}

func LocalFromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	basePath := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")
	if dsn.Host == "" {
		basePath = dsn.Path
	}

	if err := os.MkdirAll(basePath, 0o750); err != nil {
		return nil, errors.Wrapf(err, "could not create directory '%s'", basePath)
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), basePath)

	return NewStore(fs), nil
}
