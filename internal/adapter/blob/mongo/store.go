package mongo

import (
	"context"
	"regexp"
	"time"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type document struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type Store struct {
	collection *mongo.Collection
}

// Get implements port.BlobStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document

	if err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return doc.Data, nil
}

// Put implements port.BlobStore.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	doc := document{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrapf(err, "could not save blob '%s'", key)
	}

	return nil
}

// List implements port.BlobStore.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer cursor.Close(ctx)

	keys := make([]string, 0)
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.WithStack(err)
		}

		keys = append(keys, doc.Key)
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return keys, nil
}

func NewStore(collection *mongo.Collection) *Store {
	return &Store{collection: collection}
}

var _ port.BlobStore = &Store{}
