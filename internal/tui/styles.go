package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MaybeLow/OfficeAI/internal/ui"
)

// Style variables for the wizard screens.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	elapsedStyle      lipgloss.Style
	headingStyle      lipgloss.Style
	subtitleStyle     lipgloss.Style
	textStyle         lipgloss.Style
	dimStyle          lipgloss.Style
	cursorStyle       lipgloss.Style
	checkedStyle      lipgloss.Style
	buttonStyle       lipgloss.Style
	activeButtonStyle lipgloss.Style
	advisoryStyle     lipgloss.Style
	tooltipStyle      lipgloss.Style
	warnStyle         lipgloss.Style
	goodStyle         lipgloss.Style
	badStyle          lipgloss.Style
	errorStyle        lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	headingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	textStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	cursorStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	checkedStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	buttonStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Dim)

	activeButtonStyle = buttonStyle.
		Bold(true).
		Foreground(t.Accent).
		BorderForeground(t.Accent)

	advisoryStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Warning).
		PaddingLeft(1)

	tooltipStyle = lipgloss.NewStyle().
		Foreground(t.Info).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Info).
		Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	goodStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	badStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)
}
