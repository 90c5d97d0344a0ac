package player

import (
	"fmt"
	"strings"
)

// progressMargin is the number of terminal columns not used by the bar.
const progressMargin = 20

// progressBar returns the progress row drawn under frame n of total,
// including its leading blank line, or "" when total is unknown or the
// terminal is too narrow.
func progressBar(n, total, termWidth int) string {
	barWidth := termWidth - progressMargin
	if total <= 0 || barWidth < 1 {
		return ""
	}

	progress := min(1, float64(n)/float64(total))
	filled := int(progress * float64(barWidth))

	return fmt.Sprintf("\n\n[%s%s] %5.1f%%",
		repeat('=', filled),
		repeat(' ', barWidth-filled),
		progress*100,
	)
}

func repeat(c byte, n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(string(c), n)
}
