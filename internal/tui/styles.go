package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paperwatch/paperwatch/internal/present"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorBlack  = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Table styles.
var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorDim)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	emptyRowStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Center)

	detailsLinkStyle = lipgloss.NewStyle().
				Foreground(colorCyan)
)

// Session badge styles.
var (
	badgeMonitoringStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	badgeManualStyle     = lipgloss.NewStyle().Foreground(colorDim)
	countStyle           = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	fieldLabelStyle = lipgloss.NewStyle().
			Width(20).
			Bold(true).
			Foreground(colorDim)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// toneColor is the foreground used for a tone's row emphasis.
func toneColor(t present.Tone) lipgloss.AdaptiveColor {
	switch t {
	case present.ToneSuccess:
		return colorGreen
	case present.ToneWarning:
		return colorYellow
	default:
		return colorRed
	}
}

// rowStyle is the emphasis of an unselected table row.
func rowStyle(t present.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(toneColor(t))
}

// badgeStyle is the status badge, also used for detail banners.
func badgeStyle(t present.Tone) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(toneColor(t)).
		Foreground(colorBlack).
		Bold(true).
		Padding(0, 1)
}

// bannerIcon prefixes detail banners.
func bannerIcon(t present.Tone) string {
	switch t {
	case present.ToneSuccess:
		return "✓"
	case present.ToneWarning:
		return "⚠"
	default:
		return "✗"
	}
}
