package http

import (
	"net/http"
	"time"
)

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address         string
	BaseURL         string
	ShutdownTimeout time.Duration
	Mounts          map[string]http.Handler
	Middlewares     []Middleware
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3002",
		BaseURL:         "/",
		ShutdownTimeout: 10 * time.Second,
		Mounts:          map[string]http.Handler{},
		Middlewares:     make([]Middleware, 0),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}

// WithMiddleware appends a middleware wrapping every mount. Middlewares are
// applied in declaration order, the first one being the outermost.
func WithMiddleware(middleware Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middleware)
	}
}
