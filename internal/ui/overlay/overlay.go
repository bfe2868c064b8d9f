// Package overlay composites rendered blocks onto a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Blank returns a view of height lines, each width spaces wide.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Place draws block over base with its top-left corner at column x, row y.
// Every cell of block replaces the base cell under it, spaces included.
// Parts of block outside the base (negative offsets, past width, past the
// last line) are clipped. This function is ANSI-aware.
func Place(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		start := x
		end := x + ansi.StringWidth(line)
		skip := 0
		if start < 0 {
			skip = -start
			start = 0
		}
		end = min(end, width)
		if start >= end {
			continue
		}

		content := ansi.Cut(line, skip, skip+end-start)

		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, start) + content
		if end < width {
			result += ansi.Cut(baseLine, end, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
