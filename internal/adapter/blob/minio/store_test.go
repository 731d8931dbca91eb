package minio

import (
	"context"
	"fmt"
	"testing"

	"github.com/bornholm/todoshare/internal/adapter/blob/testsuite"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	testminio "github.com/testcontainers/testcontainers-go/modules/minio"
)

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container based test in short mode")
	}

	ctx := context.Background()

	const (
		minioUsername = "miniousername"
		minioPassword = "miniopassword"
	)

	minioContainer, err := testminio.Run(
		ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		testminio.WithUsername(minioUsername),
		testminio.WithPassword(minioPassword),
	)
	defer func() {
		if err := testcontainers.TerminateContainer(minioContainer); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	}()
	if err != nil {
		t.Skipf("could not start minio container: %+v", errors.WithStack(err))
	}

	endpoint, err := minioContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("could not retrieve connection string: %+v", errors.WithStack(err))
	}

	dsn := fmt.Sprintf("minio://%s:%s@%s/shared?bucket=todoshare&secure=false&autocreate=true", minioUsername, minioPassword, endpoint)

	testsuite.TestBlobStore(t, dsn)
}
