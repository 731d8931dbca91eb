package setup

import (
	"context"

	"github.com/bornholm/todoshare/internal/adapter/document"
	"github.com/bornholm/todoshare/internal/config"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
)

var getDocumentRepositoryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.DocumentRepository, error) {
	store, err := getBlobStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return document.NewRepository(store), nil
})
