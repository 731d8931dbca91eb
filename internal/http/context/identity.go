package context

import (
	"context"

	"github.com/bornholm/todoshare/internal/core/model"
)

const keyIdentity contextKey = "identity"

// Identity returns the acting identity of the request, model.Admin if none
// was resolved.
func Identity(ctx context.Context) model.UserID {
	identity, ok := ctx.Value(keyIdentity).(model.UserID)
	if !ok || identity == "" {
		return model.Admin
	}

	return identity
}

func SetIdentity(ctx context.Context, identity model.UserID) context.Context {
	return context.WithValue(ctx, keyIdentity, identity)
}
