// Package render provides text fitting utilities for card content.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit.
const Ellipsis = "…"

// Sanitize drops control characters (except tab) and invalid UTF-8, and
// turns non-breaking spaces into plain ones, so stray bytes in card content
// cannot move the terminal cursor.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case r == ' ':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate sanitizes plain text and shortens it to maxWidth cells, ending
// with an ellipsis when cut. Wide characters count as two cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, Ellipsis)
}

// TruncateStyled shortens a string that may carry ANSI styling so its
// visible width fits within maxWidth, ending with an ellipsis when cut.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row lays out left and right aligned content on exactly width cells.
// The left side is cut first when both do not fit with a one-cell gap.
func Row(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	if rw >= width {
		return TruncateStyled(right, width)
	}
	left = TruncateStyled(left, width-rw-1)
	gap := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
