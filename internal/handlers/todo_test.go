package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/todolist/internal/logger"
	"github.com/mkuznetsov/todolist/internal/repository/postgres"
	"github.com/mkuznetsov/todolist/internal/service/auth"
	"github.com/mkuznetsov/todolist/internal/service/todo"
	"github.com/mkuznetsov/todolist/internal/testutil"
)

func Test_TodoHandlers(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// Run http server with the full router attached and a logged in user.
	// fn gets a request helper that sends JSON with the user's bearer token
	type doFunc func(method string, path string, body string, token string) (*http.Response, string)

	withServer := func(dbpool *pgxpool.Pool, t *testing.T, fn func(do doFunc, token string)) {
		testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
			userRepo := &postgres.UserRepo{DB: tx}
			todoRepo := &postgres.TodoRepo{DB: tx}

			authService, err := auth.NewService(auth.Config{SecretKey: "test-secret"}, userRepo)
			require.NoError(t, err, "auth service starting error", err)
			todoService := todo.NewService(todoRepo)

			srv := httptest.NewServer(NewRouter(authService, todoService, logger.NewNoOpLogger()))
			defer srv.Close()

			_, err = authService.Register(t.Context(), "alice", "pw1", "r1")
			require.NoError(t, err)
			issued, _, err := authService.Login(t.Context(), "alice", "pw1")
			require.NoError(t, err)

			do := func(method string, path string, body string, token string) (*http.Response, string) {
				var reader io.Reader
				if body != "" {
					reader = strings.NewReader(body)
				}
				req, err := http.NewRequest(method, srv.URL+path, reader)
				require.NoError(t, err)
				req.Header.Set("Content-Type", "application/json")
				if token != "" {
					req.Header.Set("Authorization", "Bearer "+token)
				}

				resp, err := http.DefaultClient.Do(req)
				require.NoError(t, err)
				respBody, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				defer func() { _ = resp.Body.Close() }()

				return resp, string(respBody)
			}

			fn(do, issued.Value)
		})
	}

	t.Run("list requires token", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, _ string) {
			resp, body := do("GET", "/api/todos", "", "")

			require.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `
				{
					"error": "service_error",
					"message": "Unauthorized"
				}`, body)
		})
	})

	t.Run("list with garbage token is forbidden", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, _ string) {
			resp, body := do("GET", "/api/todos", "", "garbage-token")

			require.Equalf(t, http.StatusForbidden, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `
				{
					"error": "service_error",
					"message": "Forbidden"
				}`, body)
		})
	})

	t.Run("create and list", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "buy milk"}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var created TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &created))
			assert.Greater(t, created.ID, int64(0))
			assert.Equal(t, "buy milk", created.Text)
			assert.False(t, created.Completed)
			assert.False(t, created.IsPriority)

			resp, body = do("GET", "/api/todos", "", token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var list []TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &list))
			require.Len(t, list, 1)
			assert.Equal(t, created.ID, list[0].ID)
		})
	})

	t.Run("list orders priority first", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "buy milk"}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)
			resp, body = do("POST", "/api/todos", `{"text": "call bank", "isPriority": true}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			resp, body = do("GET", "/api/todos", "", token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var list []TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &list))
			require.Len(t, list, 2)
			assert.Equal(t, "call bank", list[0].Text, "priority todo should come first")
			assert.Equal(t, "buy milk", list[1].Text)
		})
	})

	t.Run("create with missing text fails validation", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{}`, token)

			require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "not expected code. Body: %s", body)
			require.Contains(t, body, "validation_failed")
		})
	})

	t.Run("create with blank text fails", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "   "}`, token)

			require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `
				{
					"error": "service_error",
					"message": "Text is required"
				}`, body)
		})
	})

	t.Run("update completed", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "buy milk"}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var created TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &created))

			resp, body = do("PUT", "/api/todos/"+itoa(created.ID), `{"completed": true}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"message": "Todo updated"}`, body)

			resp, body = do("GET", "/api/todos", "", token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var list []TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &list))
			require.Len(t, list, 1)
			assert.True(t, list[0].Completed)
			assert.False(t, list[0].IsPriority, "untouched field keeps its value")
		})
	})

	t.Run("update with empty body fails", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "buy milk"}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var created TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &created))

			resp, body = do("PUT", "/api/todos/"+itoa(created.ID), `{}`, token)

			require.Equalf(t, http.StatusBadRequest, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `
				{
					"error": "service_error",
					"message": "Nothing to update"
				}`, body)
		})
	})

	t.Run("update missing todo", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("PUT", "/api/todos/99999", `{"completed": true}`, token)

			require.Equalf(t, http.StatusNotFound, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `
				{
					"error": "service_error",
					"message": "Todo not found"
				}`, body)
		})
	})

	t.Run("delete reports changes", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("POST", "/api/todos", `{"text": "buy milk"}`, token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)

			var created TodoResponse
			require.NoError(t, json.Unmarshal([]byte(body), &created))

			resp, body = do("DELETE", "/api/todos/"+itoa(created.ID), "", token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"changes": 1}`, body)

			// Repeated delete is fine and reports zero changes
			resp, body = do("DELETE", "/api/todos/"+itoa(created.ID), "", token)
			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"changes": 0}`, body)
		})
	})

	t.Run("delete with unparsable id is zero changes", func(t *testing.T) {
		withServer(pg.Pool, t, func(do doFunc, token string) {
			resp, body := do("DELETE", "/api/todos/not-a-number", "", token)

			require.Equalf(t, http.StatusOK, resp.StatusCode, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"changes": 0}`, body)
		})
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
