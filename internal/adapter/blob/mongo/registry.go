package mongo

import (
	"context"
	"net/url"
	"strings"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	blob.RegisterStoreFactory("mongodb", FromDSN)
	blob.RegisterStoreFactory("mongodb+srv", FromDSN)
}

const (
	paramCollection   = "collection"
	defaultDatabase   = "todoshare"
	defaultCollection = "blobs"
)

func FromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	query := dsn.Query()

	collectionName := defaultCollection
	if query.Has(paramCollection) {
		collectionName = query.Get(paramCollection)
		query.Del(paramCollection)
		dsn.RawQuery = query.Encode()
	}

	databaseName := strings.Trim(dsn.Path, "/")
	if databaseName == "" {
		databaseName = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn.String()))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "could not reach mongodb server")
	}

	collection := client.Database(databaseName).Collection(collectionName)

	return NewStore(collection), nil
}
