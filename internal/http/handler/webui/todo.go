package webui

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/core/service"
	httpCtx "github.com/bornholm/todoshare/internal/http/context"
	"github.com/bornholm/todoshare/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

var (
	errMissingTodoText    = common.NewError("missing todo text", `Missing "text" in form data`, http.StatusBadRequest)
	errMissingUpdateField = common.NewError("missing update field", "Missing 'id', 'completed', or 'ownerId'", http.StatusBadRequest)
	errMissingDeleteField = common.NewError("missing delete field", "Missing 'id' or 'ownerId'", http.StatusBadRequest)
	errTodoNotFound       = common.NewError("todo not found", "Todo not found", http.StatusNotFound)
	errInvalidOwner       = common.NewError("invalid owner", "Invalid user id", http.StatusBadRequest)
)

func (h *Handler) handleAddTodo(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		common.HandleError(w, r, err)
		return
	}

	text := strings.TrimSpace(r.PostForm.Get("text"))
	if text == "" {
		common.HandleError(w, r, errMissingTodoText)
		return
	}

	rawOwners := slices.Concat(r.PostForm["userIds[]"], r.PostForm["userIds"])

	owners := make([]model.UserID, 0, len(rawOwners))
	for _, o := range rawOwners {
		owners = append(owners, model.UserID(o))
	}

	ctx := r.Context()

	if _, err := h.todos.Add(ctx, text, owners, httpCtx.Identity(ctx)); err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			common.HandleError(w, r, errInvalidOwner)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		http.Redirect(w, r, referer, http.StatusSeeOther)
		return
	}

	redirectToBaseURL(w, r)
}

type updateTodoRequest struct {
	ID        string          `json:"id"`
	Completed json.RawMessage `json:"completed"`
	OwnerID   string          `json:"ownerId"`
}

// truthy converts any JSON value to a boolean: null, false, 0 and the empty
// string are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func (h *Handler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req updateTodoRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		common.HandleJSONError(w, r, err)
		return
	}

	if req.ID == "" || len(req.Completed) == 0 || req.OwnerID == "" {
		common.HandleJSONError(w, r, errMissingUpdateField)
		return
	}

	ctx := r.Context()

	_, err := h.todos.Toggle(ctx, model.TodoID(req.ID), model.UserID(req.OwnerID), truthy(req.Completed), httpCtx.Identity(ctx))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			common.HandleJSONError(w, r, errTodoNotFound)
			return
		}

		common.HandleJSONError(w, r, errors.WithStack(err))
		return
	}

	writeSuccess(w, r)
}

type deleteTodoRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
}

func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	var req deleteTodoRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		common.HandleJSONError(w, r, err)
		return
	}

	if req.ID == "" || req.OwnerID == "" {
		common.HandleJSONError(w, r, errMissingDeleteField)
		return
	}

	ctx := r.Context()

	if err := h.todos.Delete(ctx, model.TodoID(req.ID), model.UserID(req.OwnerID), httpCtx.Identity(ctx)); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			common.HandleJSONError(w, r, errTodoNotFound)
			return
		}

		common.HandleJSONError(w, r, errors.WithStack(err))
		return
	}

	writeSuccess(w, r)
}
