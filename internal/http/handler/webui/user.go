package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/core/service"
	"github.com/bornholm/todoshare/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

var (
	errMissingUsername  = common.NewError("missing username", "Username is required", http.StatusBadRequest)
	errUsernameTooLong  = common.NewError("username too long", "Username is too long", http.StatusBadRequest)
	errMissingToken     = common.NewError("missing token", "Missing 'token'", http.StatusBadRequest)
	errUserTokenMissing = common.NewError("user token not found", "User token not found", http.StatusNotFound)
)

func (h *Handler) handleAddUser(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		common.HandleError(w, r, err)
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	if username == "" {
		common.HandleError(w, r, errMissingUsername)
		return
	}

	if _, err := h.users.CreateUser(r.Context(), username); err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			common.HandleError(w, r, errUsernameTooLong)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirectToBaseURL(w, r)
}

type deleteUserRequest struct {
	Token string `json:"token"`
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		common.HandleJSONError(w, r, err)
		return
	}

	if req.Token == "" {
		common.HandleJSONError(w, r, errMissingToken)
		return
	}

	if err := h.users.DeleteUser(r.Context(), req.Token); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			common.HandleJSONError(w, r, errUserTokenMissing)
			return
		}

		common.HandleJSONError(w, r, errors.WithStack(err))
		return
	}

	writeSuccess(w, r)
}
