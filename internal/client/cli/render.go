package cli

import (
	"time"

	"github.com/mkuznetsov/todolist/internal/client/state"
)

// renderTodos prints the visible part of the local mirror
func (c *CLI) renderTodos(st state.State, now time.Time) {
	visible := st.Visible()
	if len(visible) == 0 {
		c.printf("No todos to show\n")
		return
	}

	for _, t := range visible {
		mark := " "
		if t.Completed {
			mark = "x"
		}

		star := "  "
		if t.IsPriority {
			star = "* "
		}

		tag := ""
		if state.CarriedOver(t, now) {
			tag = "  (carried over)"
		}

		c.printf("%4d [%s] %s%s%s\n", t.ID, mark, star, t.Text, tag)
		c.printf("       created %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
