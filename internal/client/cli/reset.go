package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
)

func (c *CLI) resetPasswordCmd() *cobra.Command {
	var username, recoveryPhrase, newPassword string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a forgotten password using the recovery phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.api.ResetPassword(cmd.Context(), api.ResetPasswordRequest{
				Username:       username,
				RecoveryPhrase: recoveryPhrase,
				NewPassword:    newPassword,
			})
			if err != nil {
				return err
			}

			// Reset does not log in, login with the new password is needed
			c.printf("%s\n", resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&recoveryPhrase, "recovery-phrase", "r", "", "Recovery phrase")
	cmd.Flags().StringVarP(&newPassword, "new-password", "n", "", "New password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("recovery-phrase")
	_ = cmd.MarkFlagRequired("new-password")

	return cmd
}
