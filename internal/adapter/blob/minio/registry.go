package minio

import (
	"context"
	"net/url"

	"github.com/bornholm/todoshare/internal/adapter/blob"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func init() {
	blob.RegisterStoreFactory("minio", FromDSN)
	blob.RegisterStoreFactory("s3", FromDSN)
}

type Config struct {
	Endpoint   string
	Bucket     string
	AutoCreate bool
	Options    minio.Options
}

func FromDSN(ctx context.Context, dsn *url.URL) (port.BlobStore, error) {
	conf := &Config{}

	configurations := []ConfigureFunc{
		configureBucket,
		configureCredentials,
		configureRegion,
		configureEndpoint,
		configureAutoCreate,
	}

	for _, configure := range configurations {
		if err := configure(dsn, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	client, err := minio.New(conf.Endpoint, &conf.Options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.AutoCreate {
		if err := ensureBucket(ctx, client, conf.Bucket, conf.Options.Region); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return New(client, conf.Bucket, dsn.Path), nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrapf(err, "could not check bucket '%s'", bucket)
	}

	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return errors.Wrapf(err, "could not create bucket '%s'", bucket)
	}

	return nil
}

type ConfigureFunc func(dsn *url.URL, conf *Config) error

const (
	paramToken = "token"
)

func configureCredentials(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	if dsn.User != nil {
		id := dsn.User.Username()
		secret, _ := dsn.User.Password()
		token := query.Get(paramToken)

		dsn.User = nil
		query.Del(paramToken)

		conf.Options.Creds = credentials.NewStaticV4(id, secret, token)
	}

	dsn.RawQuery = query.Encode()

	return nil
}

const (
	paramBucket = "bucket"
)

func configureBucket(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	var bucket string
	if query.Has(paramBucket) {
		bucket = query.Get(paramBucket)
		query.Del(paramBucket)
		dsn.RawQuery = query.Encode()
	} else {
		bucket = "todoshare"
	}

	conf.Bucket = bucket

	return nil
}

const (
	paramRegion = "region"
)

// R2 expects the "auto" region.
func configureRegion(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	var region string
	if query.Has(paramRegion) {
		region = query.Get(paramRegion)
		query.Del(paramRegion)
		dsn.RawQuery = query.Encode()
	} else {
		region = "us-east-1"
	}

	conf.Options.Region = region

	return nil
}

const (
	paramSecure = "secure"
)

func configureEndpoint(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	conf.Endpoint = dsn.Host

	if query.Get(paramSecure) == "true" {
		conf.Options.Secure = true
	}

	query.Del(paramSecure)
	dsn.RawQuery = query.Encode()

	return nil
}

const (
	paramAutoCreate = "autocreate"
)

func configureAutoCreate(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	conf.AutoCreate = query.Get(paramAutoCreate) == "true"

	query.Del(paramAutoCreate)
	dsn.RawQuery = query.Encode()

	return nil
}
