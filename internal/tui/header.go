package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/present"
)

func renderHeader(m *Model, width int) string {
	brand := brandStyle.Render("● paperwatch")
	endpoint := hintStyle.Render(m.poller.source.Endpoint())

	busy := " "
	if m.poller.InFlight() {
		busy = m.spinner.View()
	}
	count := countStyle.Render(present.CountLabel(m.store.Len()))
	badge := renderSessionBadge(m.session)

	left := fmt.Sprintf(" %s  %s", brand, endpoint)
	right := fmt.Sprintf("%s %s  %s ", busy, count, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Give up the endpoint before the count.
		left = ansi.Truncate(left, width-lipgloss.Width(right)-1, "…")
		gap = width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderSessionBadge(s models.Session) string {
	if !s.MonitoringActive {
		return badgeManualStyle.Render("○ Manual")
	}
	badge := badgeMonitoringStyle.Render("● Monitoring")
	if s.MonitorDir != "" {
		badge += " " + hintStyle.Render(s.MonitorDir)
	}
	return badge
}
