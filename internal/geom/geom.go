// Package geom holds the screen geometry types shared by the layout,
// snapshot and animation packages. Units are terminal cells.
package geom

import "math"

// Rect is an on-screen bounding box in viewport coordinates.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the first column right of the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Contains reports whether the cell at column x, row y lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Translate returns r moved by dx columns and dy rows.
func (r Rect) Translate(dx, dy int) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Offset is a visual displacement applied on top of a laid-out rectangle.
// It is fractional while an animation runs and rounded when drawn.
type Offset struct {
	DX float64
	DY float64
}

// IsZero reports whether the offset moves nothing.
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// Scale returns the offset multiplied by f.
func (o Offset) Scale(f float64) Offset {
	return Offset{DX: o.DX * f, DY: o.DY * f}
}

// Round returns the offset snapped to whole cells.
func (o Offset) Round() (dx, dy int) {
	return int(math.Round(o.DX)), int(math.Round(o.DY))
}
