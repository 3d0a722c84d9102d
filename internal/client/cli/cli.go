package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkuznetsov/todolist/internal/client/api"
	"github.com/mkuznetsov/todolist/internal/client/session"
)

// CLI wires the API client and the durable session store into commands
type CLI struct {
	out      io.Writer
	api      *api.Client
	sessions *session.Store
}

func New(out io.Writer) *CLI {
	return &CLI{out: out}
}

func (c *CLI) Root() *cobra.Command {
	var serverURL string
	var sessionFile string

	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "Terminal client for the todolist service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.api = api.NewClient(serverURL)

			store, err := session.Open(sessionFile)
			if err != nil {
				return err
			}
			c.sessions = store
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.sessions != nil {
				_ = c.sessions.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Server base URL")
	root.PersistentFlags().StringVar(&sessionFile, "session-file", defaultSessionFile(), "Path to the session db")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.resetPasswordCmd(),
		c.listCmd(),
		c.addCmd(),
		c.doneCmd(),
		c.undoneCmd(),
		c.priorityCmd(),
		c.rmCmd(),
	)

	return root
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todoctl.db"
	}
	return filepath.Join(home, ".todoctl.db")
}

// requireSession loads the stored session and arms the API client with it
func (c *CLI) requireSession() (session.Session, error) {
	s, err := c.sessions.Load()
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return s, errors.New("not logged in, run 'todoctl login' first")
		}
		return s, err
	}

	c.api.SetToken(s.Token)
	return s, nil
}

// dropExpiredSession clears stored credentials when the server rejected the
// token, the same way the browser app logs out on a 401/403 list response
func (c *CLI) dropExpiredSession(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		_ = c.sessions.Delete()
		return errors.New("session expired, please login again")
	}
	return err
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
