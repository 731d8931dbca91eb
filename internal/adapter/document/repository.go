package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/metrics"
	"github.com/pkg/errors"
)

const (
	todosKeyPrefix   = "todos:"
	shareLinksKey    = "admin:share_links"
	deletedTodosKey  = "system:deleted_todos"
	documentTodos    = "todos"
	documentLinks    = "share_links"
	documentDeletion = "deleted_todos"
)

func TodosKey(ownerID model.UserID) string {
	return todosKeyPrefix + string(ownerID)
}

// Repository stores every document as JSON in a blob store.
type Repository struct {
	store port.BlobStore
}

// LoadList implements port.DocumentRepository.
func (r *Repository) LoadList(ctx context.Context, ownerID model.UserID) ([]model.Todo, error) {
	todos := make([]model.Todo, 0)

	if err := r.load(ctx, TodosKey(ownerID), documentTodos, &todos); err != nil {
		return nil, errors.WithStack(err)
	}

	if todos == nil {
		todos = make([]model.Todo, 0)
	}

	return todos, nil
}

// SaveList implements port.DocumentRepository.
func (r *Repository) SaveList(ctx context.Context, ownerID model.UserID, todos []model.Todo) error {
	if todos == nil {
		todos = make([]model.Todo, 0)
	}

	if err := r.save(ctx, TodosKey(ownerID), todos); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// LoadAllOwnersTodos implements port.DocumentRepository.
func (r *Repository) LoadAllOwnersTodos(ctx context.Context) ([]model.OwnedTodo, error) {
	keys, err := r.store.List(ctx, todosKeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "could not list owner lists")
	}

	all := make([]model.OwnedTodo, 0)

	for _, key := range keys {
		ownerID := model.UserID(strings.TrimPrefix(key, todosKeyPrefix))

		todos, err := r.LoadList(ctx, ownerID)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		for _, t := range todos {
			all = append(all, model.OwnedTodo{Todo: t, OwnerID: ownerID})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

// LoadShareLinks implements port.DocumentRepository.
func (r *Repository) LoadShareLinks(ctx context.Context) (model.ShareLinks, error) {
	links := model.ShareLinks{}

	if err := r.load(ctx, shareLinksKey, documentLinks, &links); err != nil {
		return nil, errors.WithStack(err)
	}

	if links == nil {
		links = model.ShareLinks{}
	}

	for token, link := range links {
		link.Token = token
		links[token] = link
	}

	return links, nil
}

// SaveShareLinks implements port.DocumentRepository.
func (r *Repository) SaveShareLinks(ctx context.Context, links model.ShareLinks) error {
	if links == nil {
		links = model.ShareLinks{}
	}

	if err := r.save(ctx, shareLinksKey, links); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// LoadDeletedLog implements port.DocumentRepository.
func (r *Repository) LoadDeletedLog(ctx context.Context) ([]model.DeletedTodo, error) {
	entries := make([]model.DeletedTodo, 0)

	if err := r.load(ctx, deletedTodosKey, documentDeletion, &entries); err != nil {
		return nil, errors.WithStack(err)
	}

	if entries == nil {
		entries = make([]model.DeletedTodo, 0)
	}

	return entries, nil
}

// SaveDeletedLog implements port.DocumentRepository.
func (r *Repository) SaveDeletedLog(ctx context.Context, entries []model.DeletedTodo) error {
	if entries == nil {
		entries = make([]model.DeletedTodo, 0)
	}

	if err := r.save(ctx, deletedTodosKey, entries); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// load decodes the document stored under key into v. A missing document
// leaves v untouched. An undecodable one is logged and v is reset to its
// zero value.
func (r *Repository) load(ctx context.Context, key string, document string, v any) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil
		}

		return errors.Wrapf(err, "could not read document '%s'", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.WarnContext(ctx, "could not decode document, using empty value", slog.String("key", key), slogx.Error(errors.WithStack(err)))
		metrics.DocumentDecodeErrors.WithLabelValues(document).Inc()

		resetValue(v)

		return nil
	}

	return nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.store.Put(ctx, key, data); err != nil {
		return errors.Wrapf(err, "could not write document '%s'", key)
	}

	return nil
}

func resetValue(v any) {
	switch typ := v.(type) {
	case *[]model.Todo:
		*typ = make([]model.Todo, 0)
	case *[]model.DeletedTodo:
		*typ = make([]model.DeletedTodo, 0)
	case *model.ShareLinks:
		*typ = model.ShareLinks{}
	}
}

func NewRepository(store port.BlobStore) *Repository {
	return &Repository{
		store: store,
	}
}

var _ port.DocumentRepository = &Repository{}
