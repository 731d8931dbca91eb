package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/crypto"
	"github.com/bornholm/todoshare/internal/metrics"
	"github.com/pkg/errors"
)

type UserManagerOptions struct {
	GenerateToken func() (string, error)
	Clock         func() time.Time
}

type UserManagerOptionFunc func(opts *UserManagerOptions)

func WithUserManagerTokenGenerator(generate func() (string, error)) UserManagerOptionFunc {
	return func(opts *UserManagerOptions) {
		opts.GenerateToken = generate
	}
}

func WithUserManagerClock(clock func() time.Time) UserManagerOptionFunc {
	return func(opts *UserManagerOptions) {
		opts.Clock = clock
	}
}

func NewUserManagerOptions(funcs ...UserManagerOptionFunc) *UserManagerOptions {
	opts := &UserManagerOptions{
		GenerateToken: crypto.GenerateShareToken,
		Clock:         time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// UserManager manages the share links granting an identity to their holders.
type UserManager struct {
	repo          port.DocumentRepository
	generateToken func() (string, error)
	clock         func() time.Time
}

// CreateUser mints a new share link for the given username. Tokens are not
// checked for collisions.
func (m *UserManager) CreateUser(ctx context.Context, username string) (model.ShareLink, error) {
	userID := model.NewUserID(username)
	if userID == "" {
		return model.ShareLink{}, errors.Wrap(ErrInvalidArgument, "username is required")
	}

	if userID.TooLong() {
		return model.ShareLink{}, errors.Wrapf(ErrInvalidArgument, "username exceeds %d bytes", model.MaxUserIDLength)
	}

	token, err := m.generateToken()
	if err != nil {
		return model.ShareLink{}, errors.WithStack(err)
	}

	links, err := m.repo.LoadShareLinks(ctx)
	if err != nil {
		return model.ShareLink{}, errors.WithStack(err)
	}

	link := model.ShareLink{
		Token:     token,
		Username:  userID,
		CreatedAt: m.clock().UTC(),
	}

	links[token] = link

	if err := m.repo.SaveShareLinks(ctx, links); err != nil {
		return model.ShareLink{}, errors.WithStack(err)
	}

	metrics.ShareLinkChanges.WithLabelValues(metrics.OperationCreate).Inc()

	slog.InfoContext(ctx, "share link created", slog.String("username", userID.String()))

	return link, nil
}

// DeleteUser revokes the share link associated with the given token. The
// todos of the user are kept.
func (m *UserManager) DeleteUser(ctx context.Context, token string) error {
	token = normalizeToken(token)

	links, err := m.repo.LoadShareLinks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	link, exists := links[token]
	if !exists {
		return errors.Wrapf(port.ErrNotFound, "share link '%s' not found", token)
	}

	delete(links, token)

	if err := m.repo.SaveShareLinks(ctx, links); err != nil {
		return errors.WithStack(err)
	}

	metrics.ShareLinkChanges.WithLabelValues(metrics.OperationDelete).Inc()

	slog.InfoContext(ctx, "share link deleted", slog.String("username", link.Username.String()))

	return nil
}

// ListUsers returns every share link, oldest first.
func (m *UserManager) ListUsers(ctx context.Context) ([]model.ShareLink, error) {
	links, err := m.repo.LoadShareLinks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]model.ShareLink, 0, len(links))
	for _, l := range links {
		users = append(users, l)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Token < users[j].Token
		}

		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (m *UserManager) FindByToken(ctx context.Context, token string) (model.ShareLink, error) {
	token = normalizeToken(token)

	links, err := m.repo.LoadShareLinks(ctx)
	if err != nil {
		return model.ShareLink{}, errors.WithStack(err)
	}

	link, exists := links[token]
	if !exists {
		metrics.ShareLinkResolutions.WithLabelValues(metrics.ResultNotFound).Inc()
		return model.ShareLink{}, errors.Wrapf(port.ErrNotFound, "share link '%s' not found", token)
	}

	metrics.ShareLinkResolutions.WithLabelValues(metrics.ResultFound).Inc()

	return link, nil
}

func NewUserManager(repo port.DocumentRepository, funcs ...UserManagerOptionFunc) *UserManager {
	opts := NewUserManagerOptions(funcs...)
	return &UserManager{
		repo:          repo,
		generateToken: opts.GenerateToken,
		clock:         opts.Clock,
	}
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
