package cards

import (
	"fmt"
	"math"
	"strings"

	"github.com/llehouerou/tiles/internal/ui/render"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// Block is a span of the working day, in fractional hours.
type Block struct {
	Start, End float64
	Label      string
	Break      bool
}

// WeekdayBlocks is the default shift.
var WeekdayBlocks = []Block{
	{Start: 8, End: 10, Label: "On Queue"},
	{Start: 10, End: 10.25, Label: "Break", Break: true},
	{Start: 10.25, End: 12, Label: "On Queue"},
	{Start: 12, End: 12.5, Label: "Lunch", Break: true},
	{Start: 12.5, End: 14.5, Label: "On Queue"},
	{Start: 14.5, End: 14.75, Label: "Break", Break: true},
	{Start: 14.75, End: 16, Label: "On Queue"},
}

// Schedule draws the shift as a timeline with its breaks listed below.
type Schedule struct {
	Blocks []Block
}

func (s Schedule) Render(_, title string, width int) string {
	st := styles.T().S()
	if len(s.Blocks) == 0 {
		return Header(title, width) + "\n" + st.Muted.Render("No shift today")
	}

	start := s.Blocks[0].Start
	end := s.Blocks[len(s.Blocks)-1].End
	total := end - start

	unpaid := 0.0
	for _, b := range s.Blocks {
		if b.Label == "Lunch" {
			unpaid += b.End - b.Start
		}
	}

	out := []string{
		s.timeline(start, total, width),
		render.Row(st.Muted.Render(formatHour(start)), st.Muted.Render(formatHour(end)), width),
		st.Base.Render("Shift "+formatDuration(0, total)) + st.Subtle.Render(" · ") +
			st.Base.Render("Paid "+formatDuration(0, total-unpaid)),
	}
	for _, b := range s.Blocks {
		if !b.Break {
			continue
		}
		out = append(out, render.Row(
			st.Muted.Render(b.Label+" "+formatHour(b.Start)),
			st.Subtle.Render(formatDuration(b.Start, b.End)),
			width,
		))
	}
	return Header(title, width) + "\n" + lines(width, out...)
}

// timeline maps each column to the block covering its midpoint.
func (s Schedule) timeline(start, total float64, width int) string {
	st := styles.T().S()
	var b strings.Builder
	for i := range width {
		h := start + (float64(i)+0.5)/float64(width)*total
		cell := st.Subtle.Render(" ")
		for _, blk := range s.Blocks {
			if h >= blk.Start && h < blk.End {
				if blk.Break {
					cell = st.Muted.Render("░")
				} else {
					cell = st.Accent.Render("█")
				}
				break
			}
		}
		b.WriteString(cell)
	}
	return b.String()
}

// formatHour renders a fractional hour as 8a, 10:15a or 2:30p.
func formatHour(h float64) string {
	hour := int(math.Floor(h))
	mins := int(math.Round((h - float64(hour)) * 60))
	suffix := "a"
	if hour >= 12 {
		suffix = "p"
	}
	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}
	if mins > 0 {
		return fmt.Sprintf("%d:%02d%s", display, mins, suffix)
	}
	return fmt.Sprintf("%d%s", display, suffix)
}

// formatDuration renders the span between two fractional hours as 8h,
// 7h 30m or 15m.
func formatDuration(start, end float64) string {
	mins := int(math.Round((end - start) * 60))
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if m := mins % 60; m > 0 {
		return fmt.Sprintf("%dh %dm", mins/60, m)
	}
	return fmt.Sprintf("%dh", mins/60)
}
