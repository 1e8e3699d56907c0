package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/backroads/internal/ui/theme"
)

// OptionList is the four-answer selector. Navigation with arrows or
// vim keys, direct pick with 1-4, submit with enter. After Reveal the
// correct option shows green, a wrong pick red, the rest dimmed.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int // -1 when revealed by timeout
	TimedOut     bool
}

// NewOptionList creates an option list with nothing chosen yet.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection. It reports a
// submission by returning chosen >= 0; the host decides what a
// submission means.
func (o OptionList) Update(msg tea.Msg) (OptionList, int) {
	if o.Revealed {
		return o, -1
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, -1
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		return o, o.Selected
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(o.Options) {
			o.Selected = i
			return o, i
		}
	}

	return o, -1
}

// Reveal locks the list and shows the answer. chosen is -1 on timeout.
func (o OptionList) Reveal(chosen int, timedOut bool) OptionList {
	o.Revealed = true
	o.ChosenIndex = chosen
	o.TimedOut = timedOut
	return o
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case o.Revealed && i == o.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Revealed && i == o.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
