package model

import "time"

// DeletedTodo is an entry of the shared deleted todos log.
type DeletedTodo struct {
	Todo
	OwnerID   UserID    `json:"ownerId"`
	DeletedAt time.Time `json:"deletedAt"`
	DeletedBy UserID    `json:"deletedBy"`
}

func NewDeletedTodo(todo Todo, ownerID UserID, deletedBy UserID, deletedAt time.Time) DeletedTodo {
	return DeletedTodo{
		Todo:      todo,
		OwnerID:   ownerID,
		DeletedAt: deletedAt,
		DeletedBy: deletedBy,
	}
}

// DeletedAfter reports whether the entry was deleted strictly after the given time.
func (d DeletedTodo) DeletedAfter(t time.Time) bool {
	return d.DeletedAt.After(t)
}
