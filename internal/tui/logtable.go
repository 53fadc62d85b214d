package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/present"
)

// Column widths. The file column takes whatever is left.
const (
	minTimestampWidth = 9
	maxTimestampWidth = 26
	statusWidth       = 9
	detailsWidth      = 9
	minFileWidth      = 8
	columnGap         = "  "
	detailsLabel      = "Details ›"
)

// LogTable renders the newest-first table of processed files.
type LogTable struct {
	rows         []present.Row
	cursor       int
	scrollOffset int
	width        int
	height       int // lines available, including the column header
}

// NewLogTable creates an empty table.
func NewLogTable() *LogTable {
	return &LogTable{}
}

// SetEntries rebuilds every row from list (storage order). The cursor stays
// on the same display position, clamped to the new length.
func (t *LogTable) SetEntries(list models.LogList) {
	t.rows = present.Rows(list)
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.ensureVisible()
}

// SetSize sets the rendering area.
func (t *LogTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.ensureVisible()
}

// Len returns the number of rows.
func (t *LogTable) Len() int {
	return len(t.rows)
}

// Cursor returns the cursor position.
func (t *LogTable) Cursor() int {
	return t.cursor
}

// Selected returns the display index bound to the cursor row.
func (t *LogTable) Selected() (int, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return 0, false
	}
	return t.rows[t.cursor].Index, true
}

// IndexAt returns the display index bound to a line of the rendered table,
// where line 0 is the column header.
func (t *LogTable) IndexAt(line int) (int, bool) {
	if line < 1 {
		return 0, false
	}
	pos := t.scrollOffset + line - 1
	if pos >= len(t.rows) || line > t.visibleRows() {
		return 0, false
	}
	return t.rows[pos].Index, true
}

// MoveUp moves the cursor toward newer entries.
func (t *LogTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
		t.ensureVisible()
	}
}

// MoveDown moves the cursor toward older entries.
func (t *LogTable) MoveDown() {
	if t.cursor < len(t.rows)-1 {
		t.cursor++
		t.ensureVisible()
	}
}

// Top moves to the newest entry.
func (t *LogTable) Top() {
	t.cursor = 0
	t.ensureVisible()
}

// Bottom moves to the oldest entry.
func (t *LogTable) Bottom() {
	if len(t.rows) > 0 {
		t.cursor = len(t.rows) - 1
	}
	t.ensureVisible()
}

// Select moves the cursor to the row bound to displayIndex.
func (t *LogTable) Select(displayIndex int) {
	for i, r := range t.rows {
		if r.Index == displayIndex {
			t.cursor = i
			t.ensureVisible()
			return
		}
	}
}

func (t *LogTable) visibleRows() int {
	n := t.height - 1
	if n < 1 {
		n = 1
	}
	return n
}

func (t *LogTable) ensureVisible() {
	visible := t.visibleRows()
	if t.cursor < t.scrollOffset {
		t.scrollOffset = t.cursor
	}
	if t.cursor >= t.scrollOffset+visible {
		t.scrollOffset = t.cursor - visible + 1
	}
	if maxOffset := len(t.rows) - visible; t.scrollOffset > maxOffset {
		t.scrollOffset = maxOffset
	}
	if t.scrollOffset < 0 {
		t.scrollOffset = 0
	}
}

// ScrollRange returns the first and last visible row positions (1-based) for
// the status bar.
func (t *LogTable) ScrollRange() (first, last int) {
	if len(t.rows) == 0 {
		return 0, 0
	}
	last = t.scrollOffset + t.visibleRows()
	if last > len(t.rows) {
		last = len(t.rows)
	}
	return t.scrollOffset + 1, last
}

type columnLayout struct {
	timestamp int
	file      int
}

func (t *LogTable) layout() columnLayout {
	ts := minTimestampWidth
	for _, r := range t.rows {
		if w := lipgloss.Width(r.Timestamp); w > ts {
			ts = w
		}
	}
	if ts > maxTimestampWidth {
		ts = maxTimestampWidth
	}
	file := t.width - ts - statusWidth - detailsWidth - 3*len(columnGap) - 1
	if file < minFileWidth {
		file = minFileWidth
	}
	return columnLayout{timestamp: ts, file: file}
}

// View renders the table.
func (t *LogTable) View() string {
	cols := t.layout()
	var b strings.Builder

	header := " " + fitCell("Timestamp", cols.timestamp) + columnGap +
		fitCell("File", cols.file) + columnGap +
		fitCell("Status", statusWidth) + columnGap +
		fitCell("", detailsWidth)
	b.WriteString(columnHeaderStyle.Render(header))

	if len(t.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyRowStyle.Width(t.width).Render(present.EmptyMessage))
		return b.String()
	}

	end := t.scrollOffset + t.visibleRows()
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.scrollOffset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(t.renderRow(t.rows[i], cols, i == t.cursor))
	}

	return b.String()
}

func (t *LogTable) renderRow(r present.Row, cols columnLayout, selected bool) string {
	ts := fitCell(r.Timestamp, cols.timestamp)
	file := fitCell(r.FileName, cols.file)
	label := fitCell(r.Label, statusWidth-2)

	if selected {
		line := " " + ts + columnGap + file + columnGap + " " + label + " " + columnGap + detailsLabel
		return selectedRowStyle.
			Foreground(toneColor(r.Tone)).
			Width(t.width).
			Render(ansi.Truncate(line, t.width, ""))
	}

	style := rowStyle(r.Tone)
	line := " " + style.Render(ts) + columnGap +
		style.Render(file) + columnGap +
		badgeStyle(r.Tone).Render(label) + columnGap +
		detailsLinkStyle.Render(detailsLabel)
	return ansi.Truncate(line, t.width, "")
}

// fitCell truncates s to w cells and pads it back out to exactly w.
func fitCell(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "…")
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
