package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkuznetsov/todolist/internal/apperrors"
	"github.com/mkuznetsov/todolist/internal/handlers/render"
	"github.com/mkuznetsov/todolist/internal/handlers/userctx"
	"github.com/mkuznetsov/todolist/internal/models"
)

type authService interface {
	Auth(ctx context.Context, r *http.Request) (models.User, error)
}

// AuthMiddleware guards protected routes with a bearer token.
// Missing token is 401, a present but invalid or expired one is 403
func AuthMiddleware(as authService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := as.Auth(r.Context(), r)
			if err != nil {
				if errors.Is(err, apperrors.ErrTokenMissing) {
					render.ServiceError(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				render.ServiceError(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := userctx.New(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
