package mongo

import (
	"context"
	"fmt"
	"testing"

	"github.com/bornholm/todoshare/internal/adapter/blob/testsuite"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container based test in short mode")
	}

	ctx := context.Background()

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	defer func() {
		if err := testcontainers.TerminateContainer(mongoContainer); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	}()
	if err != nil {
		t.Skipf("could not start mongo container: %+v", errors.WithStack(err))
	}

	endpoint, err := mongoContainer.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("could not retrieve endpoint: %+v", errors.WithStack(err))
	}

	testsuite.TestBlobStore(t, fmt.Sprintf("mongodb://%s/todoshare?collection=blobs", endpoint))
}
