package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []key.Binding
}

var helpSections = []helpSection{
	{
		title: "Table",
		keys: []key.Binding{
			tableKeys.Up, tableKeys.Down, tableKeys.Top, tableKeys.Bottom,
			tableKeys.Details, tableKeys.Refresh,
		},
	},
	{
		title: "Details",
		keys: []key.Binding{
			detailKeys.Up, detailKeys.Down, detailKeys.PageUp, detailKeys.PageDown,
			detailKeys.Close,
		},
	},
	{
		title: "Global",
		keys:  []key.Binding{tableKeys.Help, tableKeys.Quit, globalKeys.ForceQuit},
	},
	{
		title: "Mouse",
		keys: []key.Binding{
			key.NewBinding(key.WithHelp("click", "open row details")),
			key.NewBinding(key.WithHelp("wheel", "scroll")),
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 50
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*6+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		sections = append(sections, "", sectionHeaderStyle.Render(sec.title))

		for _, b := range sec.keys {
			h := b.Help()
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(h.Key)
			descCol := hintStyle.Render(h.Desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", hintStyle.Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
