package setup

import (
	"context"

	"github.com/bornholm/todoshare/internal/config"
	"github.com/bornholm/todoshare/internal/core/service"
	"github.com/pkg/errors"
)

var GetTodoManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TodoManager, error) {
	repo, err := getDocumentRepositoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewTodoManager(repo, service.WithTodoManagerDeletedRetention(conf.Todos.DeletedRetention)), nil
})

var GetUserManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.UserManager, error) {
	repo, err := getDocumentRepositoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewUserManager(repo), nil
})

var getIdentityResolverFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.IdentityResolver, error) {
	users, err := GetUserManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewIdentityResolver(users), nil
})
