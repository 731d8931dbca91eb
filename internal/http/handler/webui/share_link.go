package webui

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

type contextKey string

const (
	shareLinkContextKey contextKey = "shareLink"
)

const unknownShareLinkMessage = "404 Not Found: User or page does not exist."

func ctxShareLink(ctx context.Context) model.ShareLink {
	raw := ctx.Value(shareLinkContextKey)
	if raw == nil {
		panic(errors.New("no share link in context"))
	}

	link, ok := raw.(model.ShareLink)
	if !ok {
		panic(errors.Errorf("unexpected context value type '%T'", raw))
	}

	return link
}

func (h *Handler) assertShareLink(next http.HandlerFunc) http.Handler {
	var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		token := r.PathValue("token")

		ctx := r.Context()

		link, err := h.users.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				common.HandleError(w, r, common.NewError(err.Error(), unknownShareLinkMessage, http.StatusNotFound))
				return
			}

			slog.ErrorContext(ctx, "could not find share link", slogx.Error(err))
			common.HandleError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, shareLinkContextKey, link)
		r = r.WithContext(ctx)

		next(w, r)
	}

	return fn
}
