package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/paperwatch/paperwatch/internal/present"
	"github.com/paperwatch/paperwatch/internal/store"
)

const (
	maxDetailWidth = 76
	// Border, padding and the title/hint lines around the viewport.
	detailChromeHeight = 8
	detailChromeWidth  = 6
)

// DetailView shows one log entry in a scrollable overlay. Its content is
// replaced as a whole on every Show.
type DetailView struct {
	viewport viewport.Model
	detail   present.Detail
	index    int
	loaded   bool
	width    int
	height   int
}

// NewDetailView creates an empty detail view.
func NewDetailView() *DetailView {
	return &DetailView{
		viewport: viewport.New(maxDetailWidth-detailChromeWidth, 10),
	}
}

// Show resolves displayIndex against s and renders that entry. An index that
// no longer resolves leaves the view unchanged and returns false.
func (d *DetailView) Show(displayIndex int, s *store.LogStore) bool {
	entry, err := s.Resolve(displayIndex)
	if err != nil {
		log.WithError(err).Debug("Detail view not populated")
		return false
	}
	d.detail = present.BuildDetail(entry)
	d.index = displayIndex
	d.loaded = true
	d.render()
	d.viewport.GotoTop()
	return true
}

// Detail returns the currently presented detail.
func (d *DetailView) Detail() (present.Detail, bool) {
	return d.detail, d.loaded
}

// Index returns the display index the view was last populated from.
func (d *DetailView) Index() int {
	return d.index
}

// SetSize fits the overlay to the terminal.
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.render()
}

func (d *DetailView) contentWidth() int {
	w := maxDetailWidth
	if d.width-4 < w {
		w = d.width - 4
	}
	w -= detailChromeWidth
	if w < 20 {
		w = 20
	}
	return w
}

func (d *DetailView) render() {
	if !d.loaded {
		return
	}
	content := renderDetailContent(d.detail, d.contentWidth())
	lines := strings.Count(content, "\n") + 1

	h := d.height - detailChromeHeight
	if lines < h {
		h = lines
	}
	if h < 3 {
		h = 3
	}
	d.viewport.Width = d.contentWidth()
	d.viewport.Height = h
	d.viewport.SetContent(content)
}

// ScrollUp scrolls the content up.
func (d *DetailView) ScrollUp(n int) {
	d.viewport.LineUp(n)
}

// ScrollDown scrolls the content down.
func (d *DetailView) ScrollDown(n int) {
	d.viewport.LineDown(n)
}

// PageUp scrolls up half a page.
func (d *DetailView) PageUp() {
	d.viewport.HalfViewUp()
}

// PageDown scrolls down half a page.
func (d *DetailView) PageDown() {
	d.viewport.HalfViewDown()
}

// View renders the overlay box.
func (d *DetailView) View() string {
	title := overlayTitleStyle.Render(fmt.Sprintf("File Details  #%d", d.index))

	hint := hintStyle.Render("Esc close")
	if !d.viewport.AtTop() || !d.viewport.AtBottom() {
		hint = hintStyle.Render(fmt.Sprintf("Esc close  ↑/↓ scroll  %3.f%%", d.viewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, d.viewport.View(), "", hint)
	return overlayStyle.Width(d.contentWidth() + 4).Render(body)
}

// renderDetailContent lays out a detail as banner followed by its blocks.
func renderDetailContent(d present.Detail, width int) string {
	banner := badgeStyle(d.Tone).
		Width(width).
		Render(bannerIcon(d.Tone) + " " + d.Banner)

	parts := []string{banner}
	for _, blk := range d.Blocks {
		parts = append(parts, "", sectionHeaderStyle.Render(blk.Title))
		if len(blk.Fields) == 0 {
			parts = append(parts, fieldValueStyle.Width(width).Render(blk.Text))
			continue
		}
		valueWidth := width - fieldLabelStyle.GetWidth()
		if valueWidth < 10 {
			valueWidth = 10
		}
		for _, f := range blk.Fields {
			label := fieldLabelStyle.Render(f.Label + ":")
			value := fieldValueStyle.Width(valueWidth).Render(f.Value)
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		}
	}
	return strings.Join(parts, "\n")
}
