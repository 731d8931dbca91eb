package model

import (
	"time"

	"github.com/google/uuid"
)

type TodoID string

func NewTodoID() TodoID {
	return TodoID(uuid.NewString())
}

// Todo is a single item of an owner list. The same todo (same id) may be
// copied in several owner lists when it was assigned to several users.
type Todo struct {
	ID          TodoID     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatorID   UserID     `json:"creatorId"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy UserID     `json:"completedBy,omitempty"`
}

func NewTodo(text string, creatorID UserID, createdAt time.Time) Todo {
	return Todo{
		ID:        NewTodoID(),
		Text:      text,
		Completed: false,
		CreatedAt: createdAt,
		CreatorID: creatorID,
	}
}

// SetCompleted updates the completion state of the todo. Completing stamps
// the completion time and author, un-completing clears both.
func (t *Todo) SetCompleted(completed bool, by UserID, at time.Time) {
	t.Completed = completed

	if !completed {
		t.CompletedAt = nil
		t.CompletedBy = ""
		return
	}

	t.CompletedAt = &at
	t.CompletedBy = by
}

// OwnedTodo is a todo annotated with the owner of the list it was read from.
type OwnedTodo struct {
	Todo
	OwnerID UserID `json:"ownerId"`
}
