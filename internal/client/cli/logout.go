package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.sessions.Delete(); err != nil {
				return err
			}

			c.printf("Logged out\n")
			return nil
		},
	}
}
