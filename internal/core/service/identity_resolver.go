package service

import (
	"context"

	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/pkg/errors"
)

// IdentityResolver maps the first path segment of a page URL to the acting
// identity. It is used for attribution only and grants no permission.
type IdentityResolver struct {
	users *UserManager
}

// adminSegments are the path segments of the admin page.
var adminSegments = map[string]struct{}{
	"":           {},
	"index.html": {},
}

// Resolve returns the username bound to the share token found in segment, or
// model.Admin when the segment is empty or unknown.
func (r *IdentityResolver) Resolve(ctx context.Context, segment string) (model.UserID, error) {
	if _, isAdmin := adminSegments[normalizeToken(segment)]; isAdmin {
		return model.Admin, nil
	}

	link, err := r.users.FindByToken(ctx, segment)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.Admin, nil
		}

		return "", errors.WithStack(err)
	}

	return link.Username, nil
}

func NewIdentityResolver(users *UserManager) *IdentityResolver {
	return &IdentityResolver{
		users: users,
	}
}
