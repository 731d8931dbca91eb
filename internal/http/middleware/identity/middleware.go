package identity

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todoshare/internal/core/model"
	httpCtx "github.com/bornholm/todoshare/internal/http/context"
)

type Resolver interface {
	Resolve(ctx context.Context, segment string) (model.UserID, error)
}

// Middleware resolves the acting identity from the page the request was
// issued from, i.e. the first path segment of the Referer header relative to
// the base URL, and stores it in the request context.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			basePath := httpCtx.BaseURL(ctx).Path
			segment := RefererSegment(r.Header.Get("Referer"), basePath)

			identity, err := resolver.Resolve(ctx, segment)
			if err != nil {
				slog.ErrorContext(ctx, "could not resolve identity", slogx.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx = slogx.WithAttrs(ctx, slog.String("identity", identity.String()))
			ctx = httpCtx.SetIdentity(ctx, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RefererSegment extracts the lowercased first path segment of the referer
// URL, once the base path is removed. It returns an empty string when the
// referer is absent or unparsable.
func RefererSegment(referer string, basePath string) string {
	if referer == "" {
		return ""
	}

	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}

	path := u.Path

	basePath = strings.TrimSuffix(basePath, "/")
	if basePath != "" {
		if !strings.HasPrefix(path, basePath) {
			return ""
		}

		path = strings.TrimPrefix(path, basePath)
	}

	return FirstSegment(path)
}

// FirstSegment returns the lowercased first segment of the given path.
func FirstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(path, "/")
	return strings.ToLower(segment)
}
