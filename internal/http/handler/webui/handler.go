package webui

import (
	"net/http"

	"github.com/bornholm/todoshare/internal/core/service"
	"github.com/bornholm/todoshare/internal/http/middleware/identity"
)

type Handler struct {
	mux          *http.ServeMux
	todos        *service.TodoManager
	users        *service.UserManager
	withIdentity func(http.Handler) http.Handler
	opts         *Options
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(todos *service.TodoManager, users *service.UserManager, resolver identity.Resolver, funcs ...OptionFunc) *Handler {
	h := &Handler{
		mux:          http.NewServeMux(),
		todos:        todos,
		users:        users,
		withIdentity: identity.Middleware(resolver),
		opts:         NewOptions(funcs...),
	}

	h.mux.HandleFunc("GET /{$}", h.getIndexPage)
	h.mux.HandleFunc("GET /index.html", h.getIndexPage)
	h.mux.HandleFunc("GET /"+VerificationFilename, h.getVerificationFile)
	h.mux.HandleFunc("GET /assets/{file}", h.getAsset)

	h.mux.Handle("GET /{token}", h.assertShareLink(h.getSharePage))
	h.mux.Handle("GET /{token}/{rest...}", h.assertShareLink(h.getSharePage))

	h.mux.Handle("POST /add_todo", h.withIdentity(http.HandlerFunc(h.handleAddTodo)))
	h.mux.Handle("PUT /update_todo", h.withIdentity(http.HandlerFunc(h.handleUpdateTodo)))
	h.mux.Handle("DELETE /delete_todo", h.withIdentity(http.HandlerFunc(h.handleDeleteTodo)))

	h.mux.HandleFunc("POST /add_user", h.handleAddUser)
	h.mux.HandleFunc("DELETE /delete_user", h.handleDeleteUser)

	return h
}

var _ http.Handler = &Handler{}
