package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
)

func (c *CLI) registerCmd() *cobra.Command {
	var username, password, recoveryPhrase string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.api.Register(cmd.Context(), api.RegisterRequest{
				Username:       username,
				Password:       password,
				RecoveryPhrase: recoveryPhrase,
			})
			if err != nil {
				return err
			}

			c.printf("Registered %s (id %d). Keep the recovery phrase safe, it is the only way to reset the password.\n", user.Username, user.ID)
			c.printf("Run 'todoctl login' to start.\n")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.Flags().StringVarP(&recoveryPhrase, "recovery-phrase", "r", "", "Recovery phrase for password reset")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("recovery-phrase")

	return cmd
}
