package handlers

import (
	"errors"
	"net/http"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/handlers/render"
	"github.com/mkuznetsov/todolist/internal/logger"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func handleRegister(auth authService, l logger.Logger) http.Handler {
	type request struct {
		Username       string `json:"username" validate:"required"`
		Password       string `json:"password" validate:"required"`
		RecoveryPhrase string `json:"recoveryPhrase" validate:"required"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		user, err := auth.Register(r.Context(), data.Username, data.Password, data.RecoveryPhrase)
		switch {
		case err == nil:
			render.JSON(w, UserResponse{ID: user.ID, Username: user.Username})
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			render.ServiceError(w, "Username already exists", http.StatusBadRequest)
		default:
			l.Error("register failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleLogin(auth authService, l logger.Logger) http.Handler {
	type request struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	type response struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		token, user, err := auth.Login(r.Context(), data.Username, data.Password)
		switch {
		case err == nil:
			render.JSON(w, response{
				Token: token.Value,
				User:  UserResponse{ID: user.ID, Username: user.Username},
			})
		case errors.Is(err, apperrors.ErrUserNotFound):
			// The original app distinguishes unknown user from bad password,
			// keep the same responses even though it leaks username existence
			render.ServiceError(w, "User not found", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			render.ServiceError(w, "Invalid password", http.StatusUnauthorized)
		default:
			l.Error("login failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleResetPassword(auth authService, l logger.Logger) http.Handler {
	type request struct {
		Username       string `json:"username" validate:"required"`
		RecoveryPhrase string `json:"recoveryPhrase" validate:"required"`
		NewPassword    string `json:"newPassword" validate:"required"`
	}
	type response struct {
		Message string `json:"message"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		err = auth.ResetPassword(r.Context(), data.Username, data.RecoveryPhrase, data.NewPassword)
		switch {
		case err == nil:
			render.JSON(w, response{Message: "Password has been reset"})
		case errors.Is(err, apperrors.ErrUserNotFound):
			render.ServiceError(w, "User not found", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrNoRecoveryPhrase):
			render.ServiceError(w, "No recovery phrase on record", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			render.ServiceError(w, "Invalid recovery phrase", http.StatusUnauthorized)
		default:
			l.Error("password reset failed", "error", err.Error())
			render.ServiceError(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
