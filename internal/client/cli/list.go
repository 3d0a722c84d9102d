package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/state"
)

func (c *CLI) listCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and show the todo list",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := state.ParseFilter(filter)
			if err != nil {
				return err
			}

			if _, err := c.requireSession(); err != nil {
				return err
			}

			todos, err := c.api.ListTodos(cmd.Context())
			if err != nil {
				return c.dropExpiredSession(err)
			}

			c.renderTodos(state.New().WithTodos(todos).WithFilter(f), time.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter: all, active or completed")

	return cmd
}
