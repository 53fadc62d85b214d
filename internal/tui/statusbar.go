package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = hintStyle
	h.Styles.ShortSeparator = hintStyle
	h.Styles.Ellipsis = hintStyle
	return h
}

func renderStatusBar(m *Model, width int) string {
	right := ""
	if first, last := m.table.ScrollRange(); m.table.Len() > 0 {
		right = hintStyle.Render(fmt.Sprintf("%d-%d of %d", first, last, m.table.Len())) + "  "
	}
	if m.lastUpdated.IsZero() {
		right += hintStyle.Render("Not updated yet") + " "
	} else {
		right += hintStyle.Render("Updated "+m.lastUpdated.Format("15:04:05")) + " "
	}

	hb := m.help
	hb.Width = width - lipgloss.Width(right) - 2
	var hints string
	if m.activeOverlay == overlayDetail {
		hints = hb.View(detailKeys)
	} else {
		hints = hb.View(tableKeys)
	}
	left := " " + hints

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
