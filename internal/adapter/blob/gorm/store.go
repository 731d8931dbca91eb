package gorm

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// Get implements port.BlobStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var blob Blob

	if err := db.WithContext(ctx).Where("name = ?", key).First(&blob).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	return blob.Data, nil
}

// Put implements port.BlobStore.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	now := time.Now().UTC()

	blob := &Blob{
		Name:      key,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(blob).Error
	if err != nil {
		return errors.Wrapf(err, "could not save blob '%s'", key)
	}

	return nil
}

// List implements port.BlobStore.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var names []string

	err = db.WithContext(ctx).Model(&Blob{}).
		Where("name LIKE ? ESCAPE ?", escapeLike(prefix)+"%", `\`).
		Order("name asc").
		Pluck("name", &names).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// LIKE is case insensitive with SQLite
	keys := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			keys = append(keys, n)
		}
	}

	return keys, nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.BlobStore = &Store{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.AutoMigrate(&Blob{}); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}
