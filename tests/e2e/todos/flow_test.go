package todos

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/state"
	"github.com/mkuznetsov/todolist/internal/testutil"
	"github.com/mkuznetsov/todolist/tests/e2e"
)

// Full user journey through the real HTTP stack with the client library:
// register, login, add a plain and a priority todo, check ordering,
// complete one and filter the view down to the active ones
func Test_TodoFlow(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	e2e.ServeWithTx(pg.Pool, t, func(_ pgx.Tx, srvURL string, _ e2e.Services) {
		client := api.NewClient(srvURL)

		// Register and login
		_, err := client.Register(t.Context(), api.RegisterRequest{
			Username:       "alice",
			Password:       "pw1",
			RecoveryPhrase: "r1",
		})
		require.NoError(t, err, "register should succeed")

		login, err := client.Login(t.Context(), api.LoginRequest{Username: "alice", Password: "pw1"})
		require.NoError(t, err, "login should succeed")
		require.NotEmpty(t, login.Token)
		client.SetToken(login.Token)

		// Add a plain and a priority todo
		buyMilk, err := client.CreateTodo(t.Context(), api.CreateTodoRequest{Text: "buy milk"})
		require.NoError(t, err)
		require.False(t, buyMilk.IsPriority)

		callBank, err := client.CreateTodo(t.Context(), api.CreateTodoRequest{Text: "call bank", IsPriority: true})
		require.NoError(t, err)
		require.True(t, callBank.IsPriority)

		// Server lists priority first even though it was created later
		todos, err := client.ListTodos(t.Context())
		require.NoError(t, err)
		require.Len(t, todos, 2)
		require.Equal(t, "call bank", todos[0].Text, "priority todo should be listed first")
		require.Equal(t, "buy milk", todos[1].Text)

		// Mirror the list locally, complete "buy milk" server-side and
		// reflect it in the mirror the way the client app does
		st := state.New().WithTodos(todos)

		completed := true
		err = client.UpdateTodo(t.Context(), buyMilk.ID, api.UpdateTodoRequest{Completed: &completed})
		require.NoError(t, err)
		st = st.SetCompleted(buyMilk.ID, true)

		// Active filter hides the completed todo without a re-fetch
		visible := st.WithFilter(state.FilterActive).Visible()
		require.Len(t, visible, 1)
		require.Equal(t, "call bank", visible[0].Text)

		// A re-fetch agrees with the local mirror
		fresh, err := client.ListTodos(t.Context())
		require.NoError(t, err)
		refreshed := state.New().WithTodos(fresh).WithFilter(state.FilterActive).Visible()
		require.Len(t, refreshed, 1)
		require.Equal(t, "call bank", refreshed[0].Text)

		// Completed filter shows the other side
		done := st.WithFilter(state.FilterCompleted).Visible()
		require.Len(t, done, 1)
		require.Equal(t, "buy milk", done[0].Text)

		// Nothing here is carried over, both todos are from today
		for _, todo := range st.Todos {
			require.False(t, state.CarriedOver(todo, time.Now()))
		}

		// Delete the completed todo and check the server agrees
		changes, err := client.DeleteTodo(t.Context(), buyMilk.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), changes)

		final, err := client.ListTodos(t.Context())
		require.NoError(t, err)
		require.Len(t, final, 1)
		require.Equal(t, "call bank", final[0].Text)
	})
}

// Two users never see each other's todos, whatever ids they guess
func Test_TodoIsolation(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	e2e.ServeWithTx(pg.Pool, t, func(_ pgx.Tx, srvURL string, _ e2e.Services) {
		alice := api.NewClient(srvURL)
		bob := api.NewClient(srvURL)

		for _, u := range []struct {
			client   *api.Client
			username string
		}{
			{alice, "alice"},
			{bob, "bob"},
		} {
			_, err := u.client.Register(t.Context(), api.RegisterRequest{
				Username:       u.username,
				Password:       "pwd",
				RecoveryPhrase: "phrase",
			})
			require.NoError(t, err)

			login, err := u.client.Login(t.Context(), api.LoginRequest{Username: u.username, Password: "pwd"})
			require.NoError(t, err)
			u.client.SetToken(login.Token)
		}

		created, err := alice.CreateTodo(t.Context(), api.CreateTodoRequest{Text: "alice's secret"})
		require.NoError(t, err)

		// Bob's list is empty
		bobTodos, err := bob.ListTodos(t.Context())
		require.NoError(t, err)
		require.Empty(t, bobTodos)

		// Bob can't update alice's todo, it looks missing to him
		completed := true
		err = bob.UpdateTodo(t.Context(), created.ID, api.UpdateTodoRequest{Completed: &completed})
		require.Error(t, err)
		var apiErr *api.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 404, apiErr.Status)

		// Bob's delete touches nothing
		changes, err := bob.DeleteTodo(t.Context(), created.ID)
		require.NoError(t, err)
		require.Equal(t, int64(0), changes)

		// Alice still has her todo untouched
		aliceTodos, err := alice.ListTodos(t.Context())
		require.NoError(t, err)
		require.Len(t, aliceTodos, 1)
		require.False(t, aliceTodos[0].Completed)
	})
}
