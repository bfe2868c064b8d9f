// Package testutil provides helpers for testing rendered views and models.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visible width of s in cells.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// Line returns row n of output with styling removed, or "" when output has
// fewer rows.
func Line(output string, n int) string {
	lines := strings.Split(output, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return StripANSI(lines[n])
}

// Cells returns width cells of row y starting at column x, with styling
// removed. Cells past the end of the row are empty.
func Cells(output string, x, y, width int) string {
	return ansi.Cut(Line(output, y), x, x+width)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr,
// or empty string if it doesn't.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}
