package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paperwatch/paperwatch/internal/models"
	"github.com/paperwatch/paperwatch/internal/store"
)

// Minimum terminal size.
const (
	minWidth  = 60
	minHeight = 12
)

// Screen row of the table's column header, below the header line and the
// panel border.
const tableTop = 2

// Model is the root Bubbletea model for the TUI.
type Model struct {
	store   *store.LogStore
	poller  *Poller
	session models.Session

	// UI state
	activeOverlay int // overlayNone, overlayHelp, overlayDetail
	width         int
	height        int
	lastUpdated   time.Time
	initialFetch  bool

	// Child components
	table   *LogTable
	detail  *DetailView
	help    help.Model
	spinner spinner.Model

	// Program reference for goroutine Send()
	program *programRef

	// Spinner state
	spinnerRunning bool
}

// NewModel creates the initial TUI model. Entries already in s are rendered
// immediately; when s is empty and initialFetch is set, Init fetches once.
func NewModel(s *store.LogStore, poller *Poller, session models.Session, initialFetch bool, program *programRef) Model {
	table := NewLogTable()
	table.SetEntries(s.Snapshot())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorCyan)

	return Model{
		store:        s,
		poller:       poller,
		session:      session,
		initialFetch: initialFetch,
		table:        table,
		detail:       NewDetailView(),
		help:         newHelpModel(),
		spinner:      sp,
		program:      program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.poller.Arm()}
	if m.initialFetch {
		cmds = append(cmds, m.poller.Refresh(), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	// ── Refresh triggers ───────────────────────────────────────────
	case PollTickMsg:
		cmds = append(cmds, m.refresh(), m.poller.Arm())
		return m, tea.Batch(cmds...)

	case SourceChangedMsg:
		return m, m.refresh()

	// ── Fetch results ──────────────────────────────────────────────
	case LogsFetchedMsg:
		if m.poller.Apply(msg, m.store) {
			m.table.SetEntries(m.store.Snapshot())
			m.lastUpdated = time.Now()
		}
		return m, nil

	case FetchFailedMsg:
		m.poller.Fail(msg)
		return m, nil

	// ── Spinner tick ──────────────────────────────────────────────
	case spinner.TickMsg:
		if !m.poller.InFlight() {
			m.spinnerRunning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refresh starts a fetch and keeps the spinner going while it is out.
func (m *Model) refresh() tea.Cmd {
	cmds := []tea.Cmd{m.poller.Refresh()}
	if !m.spinnerRunning {
		m.spinnerRunning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// showDetails populates and opens the detail overlay for displayIndex. An
// index that does not resolve leaves everything as it was.
func (m *Model) showDetails(displayIndex int) {
	if !m.detail.Show(displayIndex, m.store) {
		return
	}
	m.table.Select(displayIndex)
	m.activeOverlay = overlayDetail
}

// ── Key handling ─────────────────────────────────────────────────

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, globalKeys.ForceQuit) {
		return tea.Quit
	}

	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, globalKeys.Close) || key.Matches(msg, tableKeys.Help) || msg.String() == "q" {
			m.activeOverlay = overlayNone
		}
		return nil
	case overlayDetail:
		return m.handleDetailKey(msg)
	}

	return m.handleTableKey(msg)
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, tableKeys.Quit):
		return tea.Quit
	case key.Matches(msg, tableKeys.Help):
		m.activeOverlay = overlayHelp
	case key.Matches(msg, tableKeys.Refresh):
		return m.refresh()
	case key.Matches(msg, tableKeys.Up):
		m.table.MoveUp()
	case key.Matches(msg, tableKeys.Down):
		m.table.MoveDown()
	case key.Matches(msg, tableKeys.Top):
		m.table.Top()
	case key.Matches(msg, tableKeys.Bottom):
		m.table.Bottom()
	case key.Matches(msg, tableKeys.Details):
		if idx, ok := m.table.Selected(); ok {
			m.showDetails(idx)
		}
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, detailKeys.Close):
		m.activeOverlay = overlayNone
	case key.Matches(msg, detailKeys.Up):
		m.detail.ScrollUp(1)
	case key.Matches(msg, detailKeys.Down):
		m.detail.ScrollDown(1)
	case key.Matches(msg, detailKeys.PageUp):
		m.detail.PageUp()
	case key.Matches(msg, detailKeys.PageDown):
		m.detail.PageDown()
	}
	return nil
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	if m.activeOverlay == overlayDetail {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.detail.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.detail.ScrollDown(3)
		}
		return nil
	}
	if m.activeOverlay != overlayNone {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.table.MoveUp()
	case tea.MouseButtonWheelDown:
		m.table.MoveDown()
	case tea.MouseButtonLeft:
		if idx, ok := m.table.IndexAt(msg.Y - tableTop); ok {
			m.showDetails(idx)
		}
	}
	return nil
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	innerWidth := m.width - 2
	innerHeight := m.height - 4 // header, status bar, panel border

	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	m.table.SetSize(innerWidth, innerHeight)
	m.detail.SetSize(m.width, m.height)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	// Minimum size check
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(&m, m.width)

	panel := panelBorderStyle.
		Width(m.width - 2).
		Height(m.height - 4).
		Render(m.table.View())

	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panel, statusBar)

	// Overlay
	var overlayContent string
	switch m.activeOverlay {
	case overlayHelp:
		overlayContent = renderHelp(m.width)
	case overlayDetail:
		overlayContent = m.detail.View()
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}

	return view
}
