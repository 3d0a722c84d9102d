package repository

import (
	"context"

	"github.com/mkuznetsov/todolist/internal/models"
)

// User repository interface
type UserRepo interface {
	// Create user
	// If user with username exists already has to return apperrors.ErrUserAlreadyExists
	// recoveryPhraseHash may be nil: such user can't reset the password
	CreateUser(ctx context.Context, username string, passwordHash string, recoveryPhraseHash *string) (models.User, error)

	// Get user by it's id or username
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// Replace the user's password hash
	// If user not found must return apperrors.ErrUserNotFound
	SetPasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// Todo repository interface
type TodoRepo interface {
	// List all todos owned by userID: priority first, newest first
	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)

	// Create todo owned by userID and return the persisted row
	CreateTodo(ctx context.Context, userID int64, text string, isPriority bool) (models.Todo, error)

	// Apply non-nil patch fields to the todo scoped by (todoID, userID)
	// A todo of another user must look like a missing one: apperrors.ErrTodoNotFound
	UpdateTodo(ctx context.Context, userID int64, todoID int64, patch models.TodoPatch) (models.Todo, error)

	// Delete todo scoped by (todoID, userID) and report affected rows
	// Deleting a missing or non-owned todo is not an error: zero rows
	DeleteTodo(ctx context.Context, userID int64, todoID int64) (int64, error)
}
