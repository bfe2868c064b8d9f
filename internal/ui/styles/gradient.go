package styles

import (
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for ANSI palette colors, which cannot be blended.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

type rampKey struct {
	size     int
	from, to lipgloss.Color
}

// Titles are redrawn on every animation frame, so ramps are memoized.
var (
	rampMu    sync.Mutex
	rampCache = map[rampKey][]lipgloss.Color{}
)

// Gradient renders bold text whose color blends from one color to another
// across its grapheme clusters.
func Gradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Bold(true).Render(cluster))
	}
	return b.String()
}

// Ramp returns size colors blended from one color to another in HCL space.
// A ramp of one is just from. Both ends are exact; equal ends give a flat
// ramp. The result is the caller's to modify.
func Ramp(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	key := rampKey{size, from, to}
	rampMu.Lock()
	defer rampMu.Unlock()
	if ramp, ok := rampCache[key]; ok {
		return slices.Clone(ramp)
	}

	c1, c2 := toColorful(from), toColorful(to)
	ramp := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		switch {
		case c1 == c2 || i == 0:
			ramp[i] = lipgloss.Color(c1.Hex())
		case i == size-1:
			ramp[i] = lipgloss.Color(c2.Hex())
		default:
			ramp[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
		}
	}
	rampCache[key] = ramp
	return slices.Clone(ramp)
}

// toColorful parses a "#rrggbb" color, falling back to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
