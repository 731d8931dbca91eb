package gorm

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/todoshare/internal/adapter/blob/testsuite"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	testpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSQLiteStore(t *testing.T) {
	dir := t.TempDir()

	testsuite.TestBlobStore(t, "sqlite://"+filepath.ToSlash(filepath.Join(dir, "blobs.sqlite")))
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container based test in short mode")
	}

	if os.Getenv("TODOSHARE_SKIP_CONTAINERS") != "" {
		t.Skip("container based tests disabled")
	}

	ctx := context.Background()

	postgresContainer, err := testpostgres.Run(ctx, "postgres:16-alpine",
		testpostgres.WithDatabase("todoshare"),
		testpostgres.WithUsername("todoshare"),
		testpostgres.WithPassword("todoshare"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	defer func() {
		if err := testcontainers.TerminateContainer(postgresContainer); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	}()
	if err != nil {
		t.Skipf("could not start postgres container: %+v", errors.WithStack(err))
	}

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("could not retrieve connection string: %+v", errors.WithStack(err))
	}

	testsuite.TestBlobStore(t, dsn)
}
