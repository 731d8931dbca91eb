package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/todoshare/internal/config"
	httpServer "github.com/bornholm/todoshare/internal/http"
	"github.com/bornholm/todoshare/internal/http/handler/metrics"
	"github.com/bornholm/todoshare/internal/http/handler/webui"
	"github.com/bornholm/todoshare/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*httpServer.Server, error) {
	todos, err := GetTodoManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure todo manager from config")
	}

	users, err := GetUserManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure user manager from config")
	}

	resolver, err := getIdentityResolverFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure identity resolver from config")
	}

	webuiHandler := webui.NewHandler(
		todos, users, resolver,
		webui.WithTitle(conf.WebUI.Title),
		webui.WithAdminDisplayName(conf.WebUI.AdminDisplayName),
		webui.WithLocation(conf.WebUI.Location()),
		webui.WithDeletedRetention(conf.Todos.DeletedRetention),
	)

	options := []httpServer.OptionFunc{
		httpServer.WithAddress(conf.HTTP.Address),
		httpServer.WithBaseURL(conf.HTTP.BaseURL),
		httpServer.WithMount("/metrics", metrics.NewHandler()),
		httpServer.WithMount("/", webuiHandler),
	}

	if conf.HTTP.RateLimit.Enabled {
		rateLimit := ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
		)

		options = append(options, httpServer.WithMiddleware(rateLimit))
	}

	if conf.HTTP.CORS.Enabled {
		corsHandler := cors.New(cors.Options{
			AllowedOrigins: conf.HTTP.CORS.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
			},
			AllowedHeaders: []string{"Content-Type"},
		})

		options = append(options, httpServer.WithMiddleware(corsHandler.Handler))
	}

	server := httpServer.NewServer(options...)

	return server, nil
}
