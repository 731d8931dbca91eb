package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/adapter/cache"
	"github.com/bornholm/todoshare/internal/config"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"

	_ "github.com/bornholm/todoshare/internal/adapter/blob/afero"
	_ "github.com/bornholm/todoshare/internal/adapter/blob/gorm"
	_ "github.com/bornholm/todoshare/internal/adapter/blob/minio"
	_ "github.com/bornholm/todoshare/internal/adapter/blob/mongo"
)

var getBlobStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.BlobStore, error) {
	store, err := blob.New(ctx, conf.Storage.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "could not create blob store from dsn")
	}

	if conf.Storage.Cache.Enabled {
		slog.DebugContext(ctx, "using cached blob store", slog.Duration("ttl", conf.Storage.Cache.TTL), slog.Int("cache_size", conf.Storage.Cache.Size))
		store = cache.NewBlobStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})
