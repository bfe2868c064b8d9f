// Package layout provides pure functions for board placement calculations.
package layout

import "github.com/llehouerou/tiles/internal/geom"

// Mode selects how cards are packed on the board.
type Mode string

const (
	// ModeGrid places cards in rows of equal height, auto-fitting as many
	// fixed-width columns as the width allows, centered.
	ModeGrid Mode = "grid"
	// ModeMasonry places each card in the currently shortest column.
	ModeMasonry Mode = "masonry"
)

// Toggle returns the other layout mode.
func (m Mode) Toggle() Mode {
	if m == ModeMasonry {
		return ModeGrid
	}
	return ModeMasonry
}

// Opts are the packing parameters shared by both modes.
type Opts struct {
	ColumnWidth  int
	Gap          int
	MinRowHeight int // grid only
}

// ContentOpts contains the parameters needed to calculate board height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int // 0 if help is hidden
}

// ContentHeight calculates the available height for the board: the
// terminal height minus header and footer.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// Columns returns how many columns of colWidth separated by gap fit in width.
// At least one column is always returned.
func Columns(width, colWidth, gap int) int {
	if colWidth <= 0 {
		return 1
	}
	return max((width+gap)/(colWidth+gap), 1)
}

// CardWidth returns the width cards get: the configured column width, or
// the full width when the board is narrower than one column.
func CardWidth(width int, opts Opts) int {
	if width <= 0 {
		return opts.ColumnWidth
	}
	return min(opts.ColumnWidth, width)
}

// Place dispatches to the packer for mode.
func Place(mode Mode, heights []int, width int, opts Opts) []geom.Rect {
	if mode == ModeMasonry {
		return Masonry(heights, width, opts)
	}
	return Grid(heights, width, opts)
}

// leftMargin centers cols columns within width.
func leftMargin(width, cols, cardWidth, gap int) int {
	used := cols*cardWidth + (cols-1)*gap
	return max((width-used)/2, 0)
}

// Grid packs cards row by row. Each row is as tall as its tallest card (and
// at least MinRowHeight); every card in a row is stretched to that height.
// heights are the natural card heights, in display order.
func Grid(heights []int, width int, opts Opts) []geom.Rect {
	if len(heights) == 0 {
		return nil
	}
	cw := CardWidth(width, opts)
	cols := min(Columns(width, cw, opts.Gap), len(heights))
	left := leftMargin(width, cols, cw, opts.Gap)

	rects := make([]geom.Rect, len(heights))
	top := 0
	for start := 0; start < len(heights); start += cols {
		end := min(start+cols, len(heights))
		rowHeight := opts.MinRowHeight
		for _, h := range heights[start:end] {
			rowHeight = max(rowHeight, h)
		}
		for i := start; i < end; i++ {
			rects[i] = geom.Rect{
				Top:    top,
				Left:   left + (i-start)*(cw+opts.Gap),
				Width:  cw,
				Height: rowHeight,
			}
		}
		top += rowHeight + opts.Gap
	}
	return rects
}

// Masonry drops each card into the shortest column, the leftmost one on
// ties. Cards keep their natural height.
func Masonry(heights []int, width int, opts Opts) []geom.Rect {
	if len(heights) == 0 {
		return nil
	}
	cw := CardWidth(width, opts)
	cols := min(Columns(width, cw, opts.Gap), len(heights))
	left := leftMargin(width, cols, cw, opts.Gap)

	colTops := make([]int, cols)
	rects := make([]geom.Rect, len(heights))
	for i, h := range heights {
		col := 0
		for c := 1; c < cols; c++ {
			if colTops[c] < colTops[col] {
				col = c
			}
		}
		rects[i] = geom.Rect{
			Top:    colTops[col],
			Left:   left + col*(cw+opts.Gap),
			Width:  cw,
			Height: h,
		}
		colTops[col] += h + opts.Gap
	}
	return rects
}

// Extent returns the bounding width and height of rects measured from the
// origin.
func Extent(rects []geom.Rect) (width, height int) {
	for _, r := range rects {
		width = max(width, r.Right())
		height = max(height, r.Bottom())
	}
	return width, height
}
