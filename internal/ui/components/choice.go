package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// Choice is a single-answer selector. The cursor moves with the arrows;
// Enter or a number key picks an option. The picked option stays marked
// until another one is picked.
type Choice struct {
	Options []string
	Cursor  int
	Chosen  int // -1 until an option is picked
}

// NewChoice creates a selector with the cursor on chosen, or on the first
// option when chosen is -1.
func NewChoice(options []string, chosen int) Choice {
	cursor := chosen
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
		chosen = -1
	}
	return Choice{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update handles keyboard navigation and picking. picked is true when the
// key picked an option.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, false
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
		return c, false
	case "space":
		c.Chosen = c.Cursor
		return c, true
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
		c.Cursor = n - 1
		c.Chosen = n - 1
		return c, true
	}
	return c, false
}

// Pick marks the option under the cursor as chosen.
func (c *Choice) Pick() {
	if len(c.Options) > 0 {
		c.Chosen = c.Cursor
	}
}

// View renders the options, numbered from 1.
func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		switch {
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
