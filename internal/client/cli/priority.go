package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/state"
)

func (c *CLI) priorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority <id> <on|off>",
		Short: "Flag or unflag a todo as priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			todoID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			var isPriority bool
			switch args[1] {
			case "on":
				isPriority = true
			case "off":
				isPriority = false
			default:
				return fmt.Errorf("expected 'on' or 'off', got %q", args[1])
			}

			if _, err := c.requireSession(); err != nil {
				return err
			}

			todos, err := c.api.ListTodos(cmd.Context())
			if err != nil {
				return c.dropExpiredSession(err)
			}

			err = c.api.UpdateTodo(cmd.Context(), todoID, api.UpdateTodoRequest{IsPriority: &isPriority})
			if err != nil {
				return c.dropExpiredSession(err)
			}

			st := state.New().WithTodos(todos).SetPriority(todoID, isPriority)
			c.renderTodos(st, time.Now())
			return nil
		},
	}
}
