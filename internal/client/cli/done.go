package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/state"
)

func (c *CLI) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.setCompleted(cmd, args[0], true)
		},
	}
}

func (c *CLI) undoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a todo active again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.setCompleted(cmd, args[0], false)
		},
	}
}

// setCompleted updates the server first and touches the local mirror only
// after the server confirmed the change
func (c *CLI) setCompleted(cmd *cobra.Command, rawID string, completed bool) error {
	todoID, err := strconv.ParseInt(rawID, 10, 64)
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

	err = c.api.UpdateTodo(cmd.Context(), todoID, api.UpdateTodoRequest{Completed: &completed})
	if err != nil {
		return c.dropExpiredSession(err)
	}

	st := state.New().WithTodos(todos).SetCompleted(todoID, completed)
	c.renderTodos(st, time.Now())
	return nil
}
