package todo

import (
	"context"
	"strings"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/models"
	"github.com/mkuznetsov/todolist/internal/repository"
)

type TodoService struct {
	// Repository to access long term data
	todoRepo repository.TodoRepo
}

func NewService(todoRepo repository.TodoRepo) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// List all todos owned by the user: priority first, newest first
func (s *TodoService) List(ctx context.Context, user *models.User) ([]models.Todo, error) {
	return s.todoRepo.ListTodos(ctx, user.ID)
}

// Create todo owned by the user and return the persisted record,
// so the caller can display it without a re-fetch
func (s *TodoService) Create(ctx context.Context, user *models.User, text string, isPriority bool) (models.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return models.Todo{}, apperrors.ErrEmptyText
	}

	return s.todoRepo.CreateTodo(ctx, user.ID, text, isPriority)
}

// Update applies the non-nil patch fields to the user's todo
// A todo of another user is reported as missing
func (s *TodoService) Update(ctx context.Context, user *models.User, todoID int64, patch models.TodoPatch) (models.Todo, error) {
	if patch.IsEmpty() {
		return models.Todo{}, apperrors.ErrEmptyPatch
	}

	return s.todoRepo.UpdateTodo(ctx, user.ID, todoID, patch)
}

// Delete the user's todo and report affected rows
// Missing or non-owned todo is zero rows, not an error
func (s *TodoService) Delete(ctx context.Context, user *models.User, todoID int64) (int64, error) {
	return s.todoRepo.DeleteTodo(ctx, user.ID, todoID)
}
