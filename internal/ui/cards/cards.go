// Package cards renders the body of each dashboard card.
//
// A Surface is bound to an item by its component name. Surfaces only
// produce text for a given width; they know nothing about ordering,
// dragging or animation.
package cards

import (
	"strings"

	"github.com/llehouerou/tiles/internal/catalog"
	"github.com/llehouerou/tiles/internal/icons"
	"github.com/llehouerou/tiles/internal/ui/render"
	"github.com/llehouerou/tiles/internal/ui/styles"
)

// Surface renders a card body of at most width columns.
type Surface interface {
	Render(id, title string, width int) string
}

// SurfaceFunc adapts a plain function to Surface.
type SurfaceFunc func(id, title string, width int) string

func (f SurfaceFunc) Render(id, title string, width int) string {
	return f(id, title, width)
}

// Set maps component names to surfaces.
type Set map[string]Surface

// Defaults returns the built-in surfaces keyed by component name.
func Defaults() Set {
	return Set{
		"Schedule":       Schedule{Blocks: WeekdayBlocks},
		"Transcript":     SurfaceFunc(transcript),
		"StatusSelector": NewStatus(nil),
		"KPIs":           KPIs{Calls: 72, AHT: "5:32"},
		"QueueOverview":  QueueOverview{Hours: Hours, Calls: HourlyCalls},
		"QueueList":      QueueList{Queues: Queues},
	}
}

// Render draws item through its bound surface. Items with no bound
// surface show their Content text.
func (s Set) Render(item catalog.Item, width int) string {
	title := icons.FormatTitle(item.Component, item.Title)
	if surface, ok := s[item.Component]; ok {
		return surface.Render(item.ID, title, width)
	}
	return Header(title, width) + "\n" + styles.T().S().Muted.Render(render.Truncate(item.Content, width))
}

// Header renders a card title with its underline.
func Header(title string, width int) string {
	t := styles.T()
	name := styles.Gradient(render.Truncate(title, width), t.Primary, t.Secondary)
	return name + "\n" + t.S().Subtle.Render(render.Separator(width))
}

// lines fits each line to width and joins them.
func lines(width int, ls ...string) string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = render.TruncateStyled(l, width)
	}
	return strings.Join(out, "\n")
}

func transcript(_, title string, width int) string {
	muted := styles.T().S().Muted
	return Header(title, width) + "\n" + lines(width,
		muted.Render("Live transcript module."),
		muted.Render("Waiting for an active call..."),
	)
}
