package webui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/bornholm/todoshare/internal/core/model"
	httpCtx "github.com/bornholm/todoshare/internal/http/context"
	"github.com/bornholm/todoshare/internal/http/handler/webui/common"
	"github.com/bornholm/todoshare/internal/http/handler/webui/component"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02 15:04"

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillPageVModel(r, model.Admin, true)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(component.Page(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) getSharePage(w http.ResponseWriter, r *http.Request) {
	link := ctxShareLink(r.Context())

	vmodel, err := h.fillPageVModel(r, link.Username, false)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(component.Page(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) fillPageVModel(r *http.Request, identity model.UserID, isRootView bool) (*component.PageVModel, error) {
	vmodel := &component.PageVModel{
		Identity:   h.displayName(identity),
		IsRootView: isRootView,
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillPageVModelBase,
		h.fillPageVModelTodos,
		h.fillPageVModelDeleted,
		h.fillPageVModelUsers,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillPageVModelBase(ctx context.Context, vmodel *component.PageVModel, r *http.Request) error {
	vmodel.Title = h.opts.Title
	vmodel.BaseURL = httpCtx.BaseURL(ctx).Path
	vmodel.Retention = formatRetention(h.opts.DeletedRetention)

	return nil
}

func (h *Handler) fillPageVModelTodos(ctx context.Context, vmodel *component.PageVModel, r *http.Request) error {
	todos, err := h.todos.ListAll(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Todos = make([]component.TodoItem, 0, len(todos))
	for _, t := range todos {
		vmodel.Todos = append(vmodel.Todos, h.toTodoItem(t.Todo, t.OwnerID))
	}

	return nil
}

func (h *Handler) fillPageVModelDeleted(ctx context.Context, vmodel *component.PageVModel, r *http.Request) error {
	entries, err := h.todos.ListRecentlyDeleted(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Deleted = make([]component.DeletedItem, 0, len(entries))
	for _, e := range entries {
		vmodel.Deleted = append(vmodel.Deleted, component.DeletedItem{
			TodoItem:   h.toTodoItem(e.Todo, e.OwnerID),
			DeletedBy:  h.displayName(e.DeletedBy),
			DeletedAt:  h.formatDate(e.DeletedAt),
			DeletedAgo: humanize.Time(e.DeletedAt),
		})
	}

	return nil
}

func (h *Handler) fillPageVModelUsers(ctx context.Context, vmodel *component.PageVModel, r *http.Request) error {
	users, err := h.users.ListUsers(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Assignees = make([]component.AssigneeItem, 0, len(users))
	for _, u := range users {
		vmodel.Assignees = append(vmodel.Assignees, component.AssigneeItem{
			Value: string(u.Username),
			Label: h.displayName(u.Username),
		})
	}

	if !vmodel.IsRootView {
		return nil
	}

	origin := requestOrigin(r)

	vmodel.Users = make([]component.UserItem, 0, len(users))
	for _, u := range users {
		vmodel.Users = append(vmodel.Users, component.UserItem{
			Token:     u.Token,
			Username:  h.displayName(u.Username),
			Link:      origin + vmodel.BaseURL + u.Token,
			CreatedAt: h.formatDate(u.CreatedAt),
		})
	}

	return nil
}

func (h *Handler) toTodoItem(todo model.Todo, ownerID model.UserID) component.TodoItem {
	item := component.TodoItem{
		ID:        string(todo.ID),
		OwnerID:   string(ownerID),
		Text:      todo.Text,
		Completed: todo.Completed,
		Creator:   h.displayName(todo.CreatorID),
		CreatedAt: h.formatDate(todo.CreatedAt),
	}

	if !ownerID.IsPublic() {
		item.Owner = h.displayName(ownerID)
	}

	if todo.Completed {
		item.CompletedBy = h.displayName(todo.CompletedBy)
		if todo.CompletedAt != nil {
			item.CompletedAt = h.formatDate(*todo.CompletedAt)
		}
	}

	return item
}

func (h *Handler) displayName(id model.UserID) string {
	switch id {
	case "":
		return "unknown"
	case model.Admin:
		return h.opts.AdminDisplayName
	default:
		return string(id)
	}
}

func (h *Handler) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.In(h.opts.Location).Format(dateLayout)
}

func formatRetention(retention time.Duration) string {
	const day = 24 * time.Hour

	if retention >= day && retention%day == 0 {
		days := int(retention / day)
		if days == 1 {
			return "1 day"
		}

		return fmt.Sprintf("%d days", days)
	}

	return retention.String()
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}
