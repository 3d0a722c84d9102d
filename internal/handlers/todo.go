package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/handlers/render"
	"github.com/mkuznetsov/todolist/internal/handlers/userctx"
	"github.com/mkuznetsov/todolist/internal/logger"
	"github.com/mkuznetsov/todolist/internal/models"
)

// Todo record as it goes over the wire
// Record fields are snake_case while request bodies are camelCase: the
// format is inherited from the app this service replaced and the deployed
// clients depend on it
type TodoResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	Completed  bool      `json:"completed"`
	IsPriority bool      `json:"is_priority"`
	CreatedAt  time.Time `json:"created_at"`
}

func todoToResponse(t models.Todo) TodoResponse {
	return TodoResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		Text:       t.Text,
		Completed:  t.Completed,
		IsPriority: t.IsPriority,
		CreatedAt:  t.CreatedAt,
	}
}

func handleListTodos(todos todoService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		list, err := todos.List(r.Context(), &user)
		if err != nil {
			l.Error("list todos failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := make([]TodoResponse, 0, len(list))
		for _, t := range list {
			response = append(response, todoToResponse(t))
		}

		render.JSON(w, response)
	})
}

func handleCreateTodo(todos todoService, l logger.Logger) http.Handler {
	type request struct {
		Text       string `json:"text" validate:"required"`
		IsPriority bool   `json:"isPriority"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		todo, err := todos.Create(r.Context(), &user, data.Text, data.IsPriority)
		switch {
		case err == nil:
			render.JSON(w, todoToResponse(todo))
		case errors.Is(err, apperrors.ErrEmptyText):
			render.ServiceError(w, "Text is required", http.StatusBadRequest)
		default:
			l.Error("create todo failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleUpdateTodo(todos todoService, l logger.Logger) http.Handler {
	type request struct {
		Completed  *bool `json:"completed"`
		IsPriority *bool `json:"isPriority"`
	}
	type response struct {
		Message string `json:"message"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		todoID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			render.ServiceError(w, "Todo not found", http.StatusNotFound)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		patch := models.TodoPatch{Completed: data.Completed, IsPriority: data.IsPriority}

		_, err = todos.Update(r.Context(), &user, todoID, patch)
		switch {
		case err == nil:
			render.JSON(w, response{Message: "Todo updated"})
		case errors.Is(err, apperrors.ErrEmptyPatch):
			render.ServiceError(w, "Nothing to update", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrTodoNotFound):
			render.ServiceError(w, "Todo not found", http.StatusNotFound)
		default:
			l.Error("update todo failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleDeleteTodo(todos todoService, l logger.Logger) http.Handler {
	type response struct {
		Changes int64 `json:"changes"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// Delete is idempotent: an unparsable or unknown id is zero changes
		todoID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			render.JSON(w, response{Changes: 0})
			return
		}

		changes, err := todos.Delete(r.Context(), &user, todoID)
		if err != nil {
			l.Error("delete todo failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		render.JSON(w, response{Changes: changes})
	})
}
