package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bornholm/todoshare/internal/core/model"
	"github.com/bornholm/todoshare/internal/core/port"
	"github.com/bornholm/todoshare/internal/metrics"
	"github.com/pkg/errors"
)

const DefaultDeletedRetention = 5 * 24 * time.Hour

type TodoManagerOptions struct {
	DeletedRetention time.Duration
	Clock            func() time.Time
}

type TodoManagerOptionFunc func(opts *TodoManagerOptions)

func WithTodoManagerDeletedRetention(retention time.Duration) TodoManagerOptionFunc {
	return func(opts *TodoManagerOptions) {
		opts.DeletedRetention = retention
	}
}

func WithTodoManagerClock(clock func() time.Time) TodoManagerOptionFunc {
	return func(opts *TodoManagerOptions) {
		opts.Clock = clock
	}
}

func NewTodoManagerOptions(funcs ...TodoManagerOptionFunc) *TodoManagerOptions {
	opts := &TodoManagerOptions{
		DeletedRetention: DefaultDeletedRetention,
		Clock:            time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// TodoManager implements the todo operations. Every operation is a plain
// load, modify and save sequence on the repository: concurrent writers
// follow a last write wins policy.
type TodoManager struct {
	repo             port.DocumentRepository
	deletedRetention time.Duration
	clock            func() time.Time
}

// Add creates a new todo and copies it in the list of every given owner.
// Without any owner, the todo is assigned to the public list.
func (m *TodoManager) Add(ctx context.Context, text string, ownerIDs []model.UserID, creator model.UserID) (model.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, errors.Wrap(ErrInvalidArgument, "text is required")
	}

	owners, err := normalizeOwners(ownerIDs)
	if err != nil {
		return model.Todo{}, errors.WithStack(err)
	}

	todo := model.NewTodo(text, creator, m.now())

	for _, ownerID := range owners {
		todos, err := m.repo.LoadList(ctx, ownerID)
		if err != nil {
			return model.Todo{}, errors.WithStack(err)
		}

		todos = append(todos, todo)

		if err := m.repo.SaveList(ctx, ownerID, todos); err != nil {
			return model.Todo{}, errors.Wrapf(err, "could not add todo to list of '%s'", ownerID)
		}
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationAdd).Inc()

	slog.DebugContext(ctx, "todo added", slog.String("todo_id", string(todo.ID)), slog.Any("owners", owners), slog.String("creator", creator.String()))

	return todo, nil
}

// Toggle sets the completion state of the todo in the list of the given owner.
func (m *TodoManager) Toggle(ctx context.Context, id model.TodoID, ownerID model.UserID, completed bool, completer model.UserID) (model.Todo, error) {
	ownerID = model.NewUserID(string(ownerID))

	todos, err := m.repo.LoadList(ctx, ownerID)
	if err != nil {
		return model.Todo{}, errors.WithStack(err)
	}

	idx := indexOfTodo(todos, id)
	if idx == -1 {
		return model.Todo{}, errors.Wrapf(port.ErrNotFound, "todo '%s' not found in list of '%s'", id, ownerID)
	}

	todos[idx].SetCompleted(completed, completer, m.now())

	if err := m.repo.SaveList(ctx, ownerID, todos); err != nil {
		return model.Todo{}, errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationToggle).Inc()

	return todos[idx], nil
}

// Delete removes the todo from the list of the given owner and records it in
// the deleted todos log.
func (m *TodoManager) Delete(ctx context.Context, id model.TodoID, ownerID model.UserID, deleter model.UserID) error {
	ownerID = model.NewUserID(string(ownerID))

	todos, err := m.repo.LoadList(ctx, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	idx := indexOfTodo(todos, id)
	if idx == -1 {
		return errors.Wrapf(port.ErrNotFound, "todo '%s' not found in list of '%s'", id, ownerID)
	}

	deleted := todos[idx]
	remaining := append(todos[:idx:idx], todos[idx+1:]...)

	if err := m.repo.SaveList(ctx, ownerID, remaining); err != nil {
		return errors.WithStack(err)
	}

	entries, err := m.repo.LoadDeletedLog(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	entries = append(entries, model.NewDeletedTodo(deleted, ownerID, deleter, m.now()))

	if err := m.repo.SaveDeletedLog(ctx, entries); err != nil {
		return errors.WithStack(err)
	}

	metrics.TodoOperations.WithLabelValues(metrics.OperationDelete).Inc()

	return nil
}

// ListAll returns the todos of every owner, most recent first.
func (m *TodoManager) ListAll(ctx context.Context) ([]model.OwnedTodo, error) {
	todos, err := m.repo.LoadAllOwnersTodos(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todos, nil
}

// ListRecentlyDeleted returns the entries of the deleted todos log that are
// still in the retention window, most recently deleted first. Expired entries
// are removed from the stored log.
func (m *TodoManager) ListRecentlyDeleted(ctx context.Context) ([]model.DeletedTodo, error) {
	kept, _, err := m.compactDeletedLog(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].DeletedAt.After(kept[j].DeletedAt)
	})

	return kept, nil
}

// PurgeDeleted removes the expired entries of the deleted todos log and
// returns how many were removed.
func (m *TodoManager) PurgeDeleted(ctx context.Context) (int, error) {
	_, purged, err := m.compactDeletedLog(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	if purged > 0 {
		metrics.TodoOperations.WithLabelValues(metrics.OperationPurge).Inc()
	}

	return purged, nil
}

func (m *TodoManager) compactDeletedLog(ctx context.Context) ([]model.DeletedTodo, int, error) {
	entries, err := m.repo.LoadDeletedLog(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	threshold := m.now().Add(-m.deletedRetention)

	kept := make([]model.DeletedTodo, 0, len(entries))
	for _, e := range entries {
		if e.DeletedAfter(threshold) {
			kept = append(kept, e)
		}
	}

	purged := len(entries) - len(kept)
	if purged == 0 {
		return kept, 0, nil
	}

	if err := m.repo.SaveDeletedLog(ctx, kept); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	metrics.DeletedTodosExpired.Add(float64(purged))

	slog.DebugContext(ctx, "expired deleted todos purged", slog.Int("purged", purged))

	return kept, purged, nil
}

func (m *TodoManager) now() time.Time {
	return m.clock().UTC()
}

func NewTodoManager(repo port.DocumentRepository, funcs ...TodoManagerOptionFunc) *TodoManager {
	opts := NewTodoManagerOptions(funcs...)
	return &TodoManager{
		repo:             repo,
		deletedRetention: opts.DeletedRetention,
		clock:            opts.Clock,
	}
}

func indexOfTodo(todos []model.Todo, id model.TodoID) int {
	for idx, t := range todos {
		if t.ID == id {
			return idx
		}
	}

	return -1
}

func normalizeOwners(ownerIDs []model.UserID) ([]model.UserID, error) {
	owners := make([]model.UserID, 0, len(ownerIDs))
	seen := make(map[model.UserID]struct{}, len(ownerIDs))

	for _, id := range ownerIDs {
		id = model.NewUserID(string(id))
		if id == "" {
			continue
		}

		if id.TooLong() {
			return nil, errors.Wrapf(ErrInvalidArgument, "owner id exceeds %d bytes", model.MaxUserIDLength)
		}

		if _, exists := seen[id]; exists {
			continue
		}

		seen[id] = struct{}{}
		owners = append(owners, id)
	}

	if len(owners) == 0 {
		owners = append(owners, model.Public)
	}

	return owners, nil
}
