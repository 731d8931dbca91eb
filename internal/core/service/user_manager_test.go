package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func sequentialTokens() func() (string, error) {
	counter := 0
	return func() (string, error) {
		counter++
		return fmt.Sprintf("%08x", counter), nil
	}
}

func TestUserManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository()
	clock := newTestClock()

	manager := NewUserManager(repo,
		WithUserManagerClock(clock.Now),
		WithUserManagerTokenGenerator(sequentialTokens()),
	)

	alice, err := manager.CreateUser(ctx, "  Alice ")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.UserID("alice"), alice.Username; e != g {
		t.Errorf("expected %v, got %v", e, g)
	}

	if e, g := "00000001", alice.Token; e != g {
		t.Errorf("expected %v, got %v", e, g)
	}

	clock.Advance(time.Minute)

	bob, err := manager.CreateUser(ctx, "bob")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := manager.FindByToken(ctx, alice.Token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := alice.Username, found.Username; e != g {
		t.Errorf("expected %v, got %v", e, g)
	}

	users, err := manager.ListUsers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(users); e != g {
		t.Fatalf("expected %v users, got %v", e, g)
	}

	if e, g := alice.Token, users[0].Token; e != g {
		t.Errorf("expected %v, got %v", e, g)
	}

	if err := manager.DeleteUser(ctx, alice.Token); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.FindByToken(ctx, alice.Token); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %+v", err)
	}

	if _, err := manager.FindByToken(ctx, bob.Token); err != nil {
		t.Errorf("expected bob link to be kept, got %+v", err)
	}

	if err := manager.DeleteUser(ctx, alice.Token); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %+v", err)
	}
}

func TestUserManagerCreateEmptyUsername(t *testing.T) {
	ctx := context.Background()
	manager := NewUserManager(newTestRepository())

	if _, err := manager.CreateUser(ctx, "  "); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %+v", err)
	}
}

func TestIdentityResolver(t *testing.T) {
	ctx := context.Background()
	users := NewUserManager(newTestRepository(), WithUserManagerTokenGenerator(func() (string, error) {
		return "a1b2c3d4", nil
	}))

	if _, err := users.CreateUser(ctx, "alice"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	resolver := NewIdentityResolver(users)

	type testCase struct {
		Segment  string
		Expected model.UserID
	}

	testCases := []testCase{
		{Segment: "", Expected: model.Admin},
		{Segment: "a1b2c3d4", Expected: "alice"},
		{Segment: "A1B2C3D4", Expected: "alice"},
		{Segment: "deadbeef", Expected: model.Admin},
		{Segment: "index.html", Expected: model.Admin},
	}

	for _, tc := range testCases {
		t.Run(tc.Segment, func(t *testing.T) {
			identity, err := resolver.Resolve(ctx, tc.Segment)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, identity; e != g {
				t.Errorf("expected %v, got %v", e, g)
			}
		})
	}
}

func TestUserManagerCreateUsernameTooLong(t *testing.T) {
	ctx := context.Background()
	manager := NewUserManager(newTestRepository())

	if _, err := manager.CreateUser(ctx, strings.Repeat("a", model.MaxUserIDLength+1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %+v", err)
	}
}

func TestIdentityResolverAdminPage(t *testing.T) {
	ctx := context.Background()
	resolver := NewIdentityResolver(NewUserManager(newTestRepository()))

	notFound := metrics.ShareLinkResolutions.WithLabelValues(metrics.ResultNotFound)
	before := testutil.ToFloat64(notFound)

	for _, segment := range []string{"", "index.html", "INDEX.HTML"} {
		identity, err := resolver.Resolve(ctx, segment)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := model.Admin, identity; e != g {
			t.Errorf("segment '%s': expected %v, got %v", segment, e, g)
		}
	}

	if e, g := before, testutil.ToFloat64(notFound); e != g {
		t.Errorf("expected %v share link misses, got %v", e, g)
	}

	if _, err := resolver.Resolve(ctx, "deadbeef"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := before+1, testutil.ToFloat64(notFound); e != g {
		t.Errorf("expected %v share link misses, got %v", e, g)
	}
}
