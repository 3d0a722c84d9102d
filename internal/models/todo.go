package models

import (
	"sort"
	"time"
)

type Todo struct {
	ID         int64
	UserID     int64
	Text       string
	Completed  bool
	IsPriority bool
	CreatedAt  time.Time
}

// Patch with optional fields: only non-nil fields are applied
type TodoPatch struct {
	Completed  *bool
	IsPriority *bool
}

func (p TodoPatch) IsEmpty() bool {
	return p.Completed == nil && p.IsPriority == nil
}

// SortTodos orders todos the same way the server lists them:
// priority first, newest first within the same priority
func SortTodos(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		if todos[i].IsPriority != todos[j].IsPriority {
			return todos[i].IsPriority
		}
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
}
