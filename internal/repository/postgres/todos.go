package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/models"
)

type TodoRepo struct {
	DB DBTX
}

const listTodos = `-- name: ListTodos
SELECT id, created_at, user_id, text, completed, is_priority FROM todos
WHERE user_id = $1
ORDER BY is_priority DESC, created_at DESC
`

func (r *TodoRepo) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, _ := r.DB.Query(ctx, listTodos, userID)
	todos, err := pgx.CollectRows(rows, rowToTodo)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todos, nil
}

const createTodo = `-- name: CreateTodo
INSERT INTO todos (user_id, text, is_priority)
VALUES ($1, $2, $3)
RETURNING id, created_at, user_id, text, completed, is_priority
`

func (r *TodoRepo) CreateTodo(ctx context.Context, userID int64, text string, isPriority bool) (models.Todo, error) {
	rows, _ := r.DB.Query(ctx, createTodo, userID, text, isPriority)
	todo, err := pgx.CollectOneRow(rows, rowToTodo)
	if err != nil {
		return todo, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

// Typed partial update: nil patch fields keep the stored value.
// Scoped by (id, user_id) so a foreign todo behaves as a missing one
const updateTodo = `-- name: UpdateTodo
UPDATE todos
SET completed   = COALESCE($3, completed),
    is_priority = COALESCE($4, is_priority)
WHERE id = $1 AND user_id = $2
RETURNING id, created_at, user_id, text, completed, is_priority
`

func (r *TodoRepo) UpdateTodo(ctx context.Context, userID int64, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	rows, _ := r.DB.Query(ctx, updateTodo, todoID, userID, patch.Completed, patch.IsPriority)
	todo, err := pgx.CollectOneRow(rows, rowToTodo)

	switch {
	case err == nil:
		return todo, nil
	case errors.Is(err, pgx.ErrNoRows):
		return todo, apperrors.ErrTodoNotFound
	default:
		return todo, fmt.Errorf("db error: %w", err)
	}
}

const deleteTodo = `-- name: DeleteTodo
DELETE FROM todos
WHERE id = $1 AND user_id = $2
`

func (r *TodoRepo) DeleteTodo(ctx context.Context, userID int64, todoID int64) (int64, error) {
	tag, err := r.DB.Exec(ctx, deleteTodo, todoID, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func rowToTodo(row pgx.CollectableRow) (models.Todo, error) {
	var t models.Todo
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UserID, &t.Text, &t.Completed, &t.IsPriority)
	return t, err
}
