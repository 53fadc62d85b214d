package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone   = 0
	overlayHelp   = 1
	overlayDetail = 2
)

const resetSGR = "\x1b[0m"

// renderOverlay draws box centered over a dimmed copy of base.
func renderOverlay(base, box string, width, height int) string {
	lines := strings.Split(base, "\n")
	for i, l := range lines {
		lines[i] = overlayDimStyle.Render(ansi.Strip(l))
	}

	boxLines := strings.Split(box, "\n")
	top, left := centerOrigin(lipgloss.Width(box), len(boxLines), width, height)

	for i, bl := range boxLines {
		if row := top + i; row < len(lines) {
			lines[row] = spliceLine(lines[row], bl, left)
		}
	}
	return strings.Join(lines, "\n")
}

// centerOrigin returns the top-left cell for a w×h box on a screen,
// never closer than one cell to the top-left edge.
func centerOrigin(w, h, screenW, screenH int) (top, left int) {
	top = max(1, (screenH-h)/2)
	left = max(1, (screenW-w)/2)
	return top, left
}

// spliceLine replaces the cells of bg starting at column col with fg.
func spliceLine(bg, fg string, col int) string {
	bgWidth := lipgloss.Width(bg)

	head := ansi.Truncate(bg, col, "")
	if pad := col - lipgloss.Width(head); pad > 0 {
		head += strings.Repeat(" ", pad)
	}

	tail := ""
	if end := col + lipgloss.Width(fg); end < bgWidth {
		tail = ansi.Cut(bg, end, bgWidth)
	}

	return head + resetSGR + fg + resetSGR + tail
}
