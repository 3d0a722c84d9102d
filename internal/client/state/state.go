package state

import (
	"fmt"
	"time"

	"github.com/mkuznetsov/todolist/internal/models"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(s), nil
	default:
		return FilterAll, fmt.Errorf("unknown filter: %q", s)
	}
}

// State is the UI state: a local mirror of the todo list plus view settings.
// Update methods return a new value instead of mutating shared variables
type State struct {
	Todos         []models.Todo
	Filter        Filter
	PriorityInput bool
}

func New() State {
	return State{Filter: FilterAll}
}

// WithTodos replaces the mirror with a freshly fetched list
func (s State) WithTodos(todos []models.Todo) State {
	s.Todos = copied(todos)
	models.SortTodos(s.Todos)
	return s
}

// Prepend puts the server returned record on top and re-sorts by the same
// rule the server lists with, so a priority todo surfaces immediately
// without a round-trip re-fetch
func (s State) Prepend(todo models.Todo) State {
	todos := make([]models.Todo, 0, len(s.Todos)+1)
	todos = append(todos, todo)
	todos = append(todos, s.Todos...)
	models.SortTodos(todos)

	s.Todos = todos
	return s
}

// SetCompleted flips the completion flag of the mirrored todo
// Call it only after the server confirmed the update
func (s State) SetCompleted(todoID int64, completed bool) State {
	todos := copied(s.Todos)
	for i := range todos {
		if todos[i].ID == todoID {
			todos[i].Completed = completed
		}
	}

	s.Todos = todos
	return s
}

// SetPriority flips the priority flag and re-sorts the mirror
func (s State) SetPriority(todoID int64, isPriority bool) State {
	todos := copied(s.Todos)
	for i := range todos {
		if todos[i].ID == todoID {
			todos[i].IsPriority = isPriority
		}
	}
	models.SortTodos(todos)

	s.Todos = todos
	return s
}

// Remove drops the todo from the mirror
// Call it only after the server confirmed the delete
func (s State) Remove(todoID int64) State {
	todos := make([]models.Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		if t.ID != todoID {
			todos = append(todos, t)
		}
	}

	s.Todos = todos
	return s
}

func (s State) WithFilter(f Filter) State {
	s.Filter = f
	return s
}

// Visible returns the mirror filtered for display, no network involved
func (s State) Visible() []models.Todo {
	visible := make([]models.Todo, 0, len(s.Todos))
	for _, t := range s.Todos {
		switch s.Filter {
		case FilterActive:
			if !t.Completed {
				visible = append(visible, t)
			}
		case FilterCompleted:
			if t.Completed {
				visible = append(visible, t)
			}
		default:
			visible = append(visible, t)
		}
	}

	return visible
}

// CarriedOver reports if the todo is incomplete and was created before the
// current calendar day
func CarriedOver(t models.Todo, now time.Time) bool {
	if t.Completed {
		return false
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.CreatedAt.Before(startOfDay)
}

func copied(todos []models.Todo) []models.Todo {
	c := make([]models.Todo, len(todos))
	copy(c, todos)
	return c
}
