package api

import (
	"time"

	"github.com/mkuznetsov/todolist/internal/models"
)

// Wire types of the todolist REST API
// Request bodies are camelCase and records are snake_case, matching the
// server exactly

type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	RecoveryPhrase string `json:"recoveryPhrase"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ResetPasswordRequest struct {
	Username       string `json:"username"`
	RecoveryPhrase string `json:"recoveryPhrase"`
	NewPassword    string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateTodoRequest struct {
	Text       string `json:"text"`
	IsPriority bool   `json:"isPriority"`
}

type UpdateTodoRequest struct {
	Completed  *bool `json:"completed,omitempty"`
	IsPriority *bool `json:"isPriority,omitempty"`
}

type DeleteTodoResponse struct {
	Changes int64 `json:"changes"`
}

type Todo struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	Completed  bool      `json:"completed"`
	IsPriority bool      `json:"is_priority"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t Todo) Model() models.Todo {
	return models.Todo{
		ID:         t.ID,
		UserID:     t.UserID,
		Text:       t.Text,
		Completed:  t.Completed,
		IsPriority: t.IsPriority,
		CreatedAt:  t.CreatedAt,
	}
}

// Error body the server renders on failures
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
