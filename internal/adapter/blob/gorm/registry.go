package gorm

import (
	"context"
	"net/url"
	"strings"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func init() {
	blob.RegisterStoreFactory("sqlite", SQLiteFromDSN)
	blob.RegisterStoreFactory("postgres", PostgresFromDSN)
	blob.RegisterStoreFactory("postgresql", PostgresFromDSN)
}

var gormConfig = &gorm.Config{
	Logger: logger.Default.LogMode(logger.Error),
}

func SQLiteFromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	path := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")
	if dsn.Host == "" {
		path = dsn.Path
	}

	if dsn.RawQuery != "" {
		path += "?" + dsn.RawQuery
	}

	db, err := gorm.Open(gormlite.Open(path), gormConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return NewStore(db), nil
}

func PostgresFromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	db, err := gorm.Open(postgres.Open(dsn.String()), gormConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewStore(db), nil
}
