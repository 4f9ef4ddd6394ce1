// Package cli renders the plain-terminal output of the wizard: the result
// report of a finished run and shell completion scripts.
//
// Display* functions write to an [io.Writer]; Format* functions return the
// string without performing I/O.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MaybeLow/OfficeAI/internal/format"
	"github.com/MaybeLow/OfficeAI/internal/metrics"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
	"github.com/MaybeLow/OfficeAI/internal/ui"
)

// FormatResult returns the report for a finished run. The first line is
// always "mode: online" or "mode: offline".
func FormatResult(res onboarding.Result, elapsed time.Duration) string {
	theme := ui.GetCurrentTheme()
	color := theme.Success
	if res.Offline {
		color = theme.Warning
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s\n", theme.Paint(color, metrics.Mode(res.Offline)))
	fmt.Fprintf(&b, "session: %s\n", res.SessionID)
	fmt.Fprintf(&b, "recommendations: %s\n", formatSelection(res.Summary.Recommendations))
	if !res.Offline {
		fmt.Fprintf(&b, "data tracking: %s\n", formatSelection(res.Summary.DataTracking))
		fmt.Fprintf(&b, "%s\n", theme.Paint(theme.Secondary, onboarding.SummaryLine(res.Summary)))
	}
	fmt.Fprintf(&b, "elapsed: %s\n", format.FormatElapsed(elapsed))
	return b.String()
}

// DisplayResult writes FormatResult to out.
func DisplayResult(out io.Writer, res onboarding.Result, elapsed time.Duration) {
	fmt.Fprint(out, FormatResult(res, elapsed))
}

func formatSelection(s onboarding.Selection) string {
	if s.Empty() {
		return "none"
	}
	return strings.Join(s.IDs(), ", ")
}
