package tui

import (
	"math"

	"github.com/dustin/go-humanize"
)

func formatBytes(v uint64) string {
	return humanize.IBytes(v)
}

func formatAvg(v float64) string {
	return humanize.IBytes(uint64(math.Round(v)))
}

func formatCount(v uint64) string {
	return humanize.Comma(int64(v))
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// visibleRange returns the [start, end) window of count rows that keeps selected on screen.
func visibleRange(count, selected, maxRows int) (int, int) {
	if count == 0 {
		return 0, 0
	}
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if selected >= maxRows {
		start = selected + 1 - maxRows
	}
	end := start + maxRows
	if end > count {
		end = count
	}
	return start, end
}
