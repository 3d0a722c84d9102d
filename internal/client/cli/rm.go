package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todoID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			if _, err := c.requireSession(); err != nil {
				return err
			}

			changes, err := c.api.DeleteTodo(cmd.Context(), todoID)
			if err != nil {
				return c.dropExpiredSession(err)
			}

			// Delete is idempotent on the server, zero changes is not an error
			if changes == 0 {
				c.printf("Nothing deleted\n")
				return nil
			}

			c.printf("Deleted\n")
			return nil
		},
	}
}
