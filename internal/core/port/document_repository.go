package port

import (
	"context"

	"github.com/bornholm/todoshare/internal/core/model"
)

// DocumentRepository gives typed access to the JSON documents of the store.
//
// Loading a missing or unreadable document yields an empty value, never an error.
// Saving always overwrites the whole document.
type DocumentRepository interface {
	LoadList(ctx context.Context, ownerID model.UserID) ([]model.Todo, error)
	SaveList(ctx context.Context, ownerID model.UserID, todos []model.Todo) error

	// LoadAllOwnersTodos returns the todos of every owner list, tagged with their
	// owner and sorted by descending creation time
	LoadAllOwnersTodos(ctx context.Context) ([]model.OwnedTodo, error)

	LoadShareLinks(ctx context.Context) (model.ShareLinks, error)
	SaveShareLinks(ctx context.Context, links model.ShareLinks) error

	LoadDeletedLog(ctx context.Context) ([]model.DeletedTodo, error)
	SaveDeletedLog(ctx context.Context, entries []model.DeletedTodo) error
}
