package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/session"
	"github.com/mkuznetsov/todolist/internal/client/state"
)

func (c *CLI) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.api.Login(cmd.Context(), api.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			err = c.sessions.Save(session.Session{
				Token:    resp.Token,
				UserID:   resp.User.ID,
				Username: resp.User.Username,
			})
			if err != nil {
				return err
			}

			c.printf("Logged in as %s\n", resp.User.Username)

			// Initial fetch, same as the app does right after login
			c.api.SetToken(resp.Token)
			todos, err := c.api.ListTodos(cmd.Context())
			if err != nil {
				return err
			}

			c.renderTodos(state.New().WithTodos(todos), time.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
