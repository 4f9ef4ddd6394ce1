package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// FooterModel renders the key help for the active screen.
type FooterModel struct {
	help     help.Model
	bindings []key.Binding
}

// NewFooterModel creates a footer with the shared help styles.
func NewFooterModel() FooterModel {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = cursorStyle
	h.Styles.ShortDesc = dimStyle
	h.Styles.ShortSeparator = dimStyle
	return FooterModel{help: h}
}

// SetBindings replaces the bindings shown in the footer.
func (f *FooterModel) SetBindings(b []key.Binding) {
	f.bindings = b
}

// SetWidth updates the available width; help truncates past it.
func (f *FooterModel) SetWidth(w int) {
	f.help.Width = w
}

// View renders the footer.
func (f FooterModel) View() string {
	return " " + f.help.View(stepHelp(f.bindings))
}
