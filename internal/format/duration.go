// Package format renders values for display in the terminal UI.
package format

import (
	"fmt"
	"time"
)

// FormatElapsed renders a wall-clock duration at one-second resolution,
// e.g. "0s", "42s", "3m07s" or "1h02m09s". Negative durations render as
// "0s".
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
