package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/MaybeLow/OfficeAI/internal/format"
)

const progressBarWidth = 30

// HeaderModel renders the top bar: title, version, elapsed time and the
// wizard progress bar.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	now       func() time.Time
	version   string
	width     int
	bar       progress.Model
	percent   int
	visible   bool
}

// NewHeaderModel creates a new header. The elapsed clock starts now.
func NewHeaderModel(version string, now func() time.Time) HeaderModel {
	if now == nil {
		now = time.Now
	}
	return HeaderModel{
		startTime: now(),
		now:       now,
		version:   version,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressBarWidth),
		),
	}
}

// SetProgress updates the bar. It is hidden when visible is false.
func (h *HeaderModel) SetProgress(percent int, visible bool) {
	h.percent = percent
	h.visible = visible
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = h.now()
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the wizard started, or the frozen value
// once SetDone was called.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return h.now().Sub(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "OfficeAI Setup"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatElapsed(h.Elapsed())))

	if !h.visible {
		return headerStyle.Render(left)
	}

	right := h.bar.ViewAs(float64(h.percent) / 100)
	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + spaces(gap) + right)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
