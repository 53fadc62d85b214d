package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paperwatch/paperwatch/internal/present"
)

// Adaptive colors matching the TUI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
	styleCount   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// toneStyle colors text by the tone of its status.
func toneStyle(t present.Tone) lipgloss.Style {
	switch t {
	case present.ToneSuccess:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case present.ToneWarning:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorRed)
	}
}
