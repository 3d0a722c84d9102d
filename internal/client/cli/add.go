package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/state"
)

func (c *CLI) addCmd() *cobra.Command {
	var priority bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.requireSession(); err != nil {
				return err
			}

			todos, err := c.api.ListTodos(cmd.Context())
			if err != nil {
				return c.dropExpiredSession(err)
			}

			created, err := c.api.CreateTodo(cmd.Context(), api.CreateTodoRequest{
				Text:       strings.Join(args, " "),
				IsPriority: priority,
			})
			if err != nil {
				return c.dropExpiredSession(err)
			}

			// The server returned the full record, put it on top of the local
			// mirror and re-sort instead of re-fetching the whole list
			st := state.New().WithTodos(todos).Prepend(created)
			c.renderTodos(st, time.Now())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&priority, "priority", "P", false, "Flag the todo as priority")

	return cmd
}
