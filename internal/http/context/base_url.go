package context

import (
	"context"
	"net/url"
)

const keyBaseURL contextKey = "baseURL"

func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok || baseURL == nil {
		return &url.URL{Path: "/"}
	}

	copy := *baseURL

	return &copy
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}
