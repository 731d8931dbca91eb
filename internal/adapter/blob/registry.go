package blob

import (
	"context"
	"net/url"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
)

var storeFactories = make(map[string]StoreFactory, 0)

type StoreFactory func(ctx context.Context, dsn *url.URL) (port.BlobStore, error)

func RegisterStoreFactory(scheme string, factory StoreFactory) {
	storeFactories[scheme] = factory
}

func New(ctx context.Context, dsn string) (port.BlobStore, error) {
	url, err := url.Parse(dsn)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	factory, exists := storeFactories[url.Scheme]
	if !exists {
		return nil, errors.Wrapf(ErrSchemeNotRegistered, "no driver associated with scheme '%s'", url.Scheme)
	}

	store, err := factory(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
}
