package handlers

import (
	"context"
	"net/http"

	"github.com/mkuznetsov/todolist/internal/handlers/middleware"
	"github.com/mkuznetsov/todolist/internal/logger"
	"github.com/mkuznetsov/todolist/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	authService authService,
	todoService todoService,
	logger logger.Logger,
) http.Handler {
	authMiddleware := middleware.AuthMiddleware(authService)
	withAuth := func(h http.Handler) http.Handler {
		return authMiddleware(h)
	}

	api := http.NewServeMux()

	api.Handle("POST /auth/register", handleRegister(authService, logger))
	api.Handle("POST /auth/login", handleLogin(authService, logger))
	api.Handle("POST /auth/reset-password", handleResetPassword(authService, logger))

	api.Handle("GET /todos", withAuth(handleListTodos(todoService, logger)))
	api.Handle("POST /todos", withAuth(handleCreateTodo(todoService, logger)))
	api.Handle("PUT /todos/{id}", withAuth(handleUpdateTodo(todoService, logger)))
	api.Handle("DELETE /todos/{id}", withAuth(handleDeleteTodo(todoService, logger)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	handler := chain(root,
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

type authService interface {
	// Register user with username, password and recovery phrase
	// Has to return apperrors.ErrUserAlreadyExists if user already exists
	Register(ctx context.Context, username string, password string, recoveryPhrase string) (models.User, error)

	// Login user with username and password
	// Has to return apperrors.ErrUserNotFound if user not found and
	// apperrors.ErrInvalidCredentials if the password does not match
	Login(ctx context.Context, username string, password string) (models.IssuedToken, models.User, error)

	// Replace the password if the recovery phrase matches
	ResetPassword(ctx context.Context, username string, recoveryPhrase string, newPassword string) error

	// Get request and return user if it authenticated or error
	Auth(ctx context.Context, r *http.Request) (models.User, error)
}

type todoService interface {
	List(ctx context.Context, user *models.User) ([]models.Todo, error)
	Create(ctx context.Context, user *models.User, text string, isPriority bool) (models.Todo, error)
	Update(ctx context.Context, user *models.User, todoID int64, patch models.TodoPatch) (models.Todo, error)
	Delete(ctx context.Context, user *models.User, todoID int64) (int64, error)
}
