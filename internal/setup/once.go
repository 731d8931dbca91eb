package setup

import (
	"context"
	"sync"

	"github.com/bornholm/todoshare/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the result of the given factory: the first
// call builds the value, later calls return it regardless of their
// arguments.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
		})

		return value, err
	}
}
