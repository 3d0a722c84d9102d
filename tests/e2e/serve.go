package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/todolist/internal/handlers"
	"github.com/mkuznetsov/todolist/internal/logger"
	"github.com/mkuznetsov/todolist/internal/repository/postgres"
	"github.com/mkuznetsov/todolist/internal/service/auth"
	"github.com/mkuznetsov/todolist/internal/service/todo"
	"github.com/mkuznetsov/todolist/internal/testutil"
)

type Services struct {
	AuthService *auth.AuthService
	TodoService *todo.TodoService
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function so db state rolls back when the test stops
func ServeWithTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
		// Initialize repositories
		userRepo := &postgres.UserRepo{DB: tx}
		todoRepo := &postgres.TodoRepo{DB: tx}

		// Initialize services
		as, err := auth.NewService(auth.Config{SecretKey: "test-secret"}, userRepo)
		require.NoError(t, err, "auth service starting error", err)

		ts := todo.NewService(todoRepo)

		// Complete all together as router
		router := handlers.NewRouter(as, ts, logger.NewNoOpLogger())

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			AuthService: as,
			TodoService: ts,
		})
	})
}
