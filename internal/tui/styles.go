package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/state"
)

// Color palette. The brand colors and the theme's foreground are replaced
// by applyTheme.
var (
	colorPrimary   lipgloss.TerminalColor = lipgloss.Color("#FF8C42")
	colorSecondary lipgloss.TerminalColor = lipgloss.Color("#F04393")
	colorAccent    lipgloss.TerminalColor = lipgloss.Color("#8D46E7")
	colorMuted                            = lipgloss.Color("#666666")
	colorSuccess                          = lipgloss.Color("#2ECC71")
	colorWarning                          = lipgloss.Color("#F39C12")
	colorError                            = lipgloss.Color("#E74C3C")
	colorFg        lipgloss.TerminalColor = lipgloss.Color("#C0CAF5")
	colorSubtle    lipgloss.TerminalColor = lipgloss.Color("#414868")
)

var themePalettes = map[state.Theme]struct {
	fg, subtle lipgloss.TerminalColor
}{
	state.ThemeObsidian: {lipgloss.Color("#C0CAF5"), lipgloss.Color("#414868")},
	state.ThemeRoyal:    {lipgloss.Color("#E6E0FF"), lipgloss.Color("#4B3B8F")},
	state.ThemeAuto: {
		lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#C0CAF5"},
		lipgloss.AdaptiveColor{Light: "#C8CCD8", Dark: "#414868"},
	},
}

// Styles
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	timerStyle        lipgloss.Style
	timerRunningStyle lipgloss.Style
	timerPausedStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// applyTheme recolors the UI from the stored settings.
func applyTheme(s state.Settings) {
	if p, ok := themePalettes[s.Theme]; ok {
		colorFg = p.fg
		colorSubtle = p.subtle
	}
	if s.BrandColors[0] != "" {
		colorPrimary = lipgloss.Color(s.BrandColors[0])
	}
	if s.BrandColors[1] != "" {
		colorSecondary = lipgloss.Color(s.BrandColors[1])
	}
	if s.BrandColors[2] != "" {
		colorAccent = lipgloss.Color(s.BrandColors[2])
	}
	buildStyles()
}

func buildStyles() {
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorPrimary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	// Timer
	timerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Align(lipgloss.Center)

	timerRunningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSuccess).
		Align(lipgloss.Center)

	timerPausedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWarning).
		Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	normalItemStyle = lipgloss.NewStyle().
		Foreground(colorFg)
}
