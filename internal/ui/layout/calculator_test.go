package layout

import (
	"testing"

	"github.com/llehouerou/tiles/internal/geom"
)

var testOpts = Opts{ColumnWidth: 10, Gap: 1, MinRowHeight: 4}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "with footer",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 2},
			want:         37,
		},
		{
			name:         "tiny window",
			windowHeight: 2,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 2},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width, colWidth, gap int
		want                 int
	}{
		{32, 10, 1, 3},  // 3*10 + 2 gaps fits exactly
		{31, 10, 1, 2},  // one short
		{40, 10, 1, 3},  // leftover space is margin
		{120, 36, 1, 3}, // default card width
		{5, 10, 1, 1},   // always at least one
		{20, 10, 0, 2},
		{20, 0, 1, 1},
	}

	for _, tt := range tests {
		got := Columns(tt.width, tt.colWidth, tt.gap)
		if got != tt.want {
			t.Errorf("Columns(%d, %d, %d) = %d, want %d", tt.width, tt.colWidth, tt.gap, got, tt.want)
		}
	}
}

func TestGrid_RowsShareTallestHeight(t *testing.T) {
	rects := Grid([]int{3, 6, 2, 5}, 32, testOpts)

	want := []geom.Rect{
		{Top: 0, Left: 0, Width: 10, Height: 6},
		{Top: 0, Left: 11, Width: 10, Height: 6},
		{Top: 0, Left: 22, Width: 10, Height: 6},
		{Top: 7, Left: 0, Width: 10, Height: 5},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestGrid_MinRowHeight(t *testing.T) {
	rects := Grid([]int{1, 2}, 32, testOpts)

	for i, r := range rects {
		if r.Height != 4 {
			t.Errorf("rect %d height = %d, want 4", i, r.Height)
		}
	}
}

func TestGrid_Centered(t *testing.T) {
	rects := Grid([]int{3, 3}, 40, testOpts)

	// Two columns use 21 cells; (40 - 21) / 2 = 9.
	if rects[0].Left != 9 || rects[1].Left != 20 {
		t.Errorf("lefts = %d, %d, want 9, 20", rects[0].Left, rects[1].Left)
	}
}

func TestGrid_NarrowerThanOneColumn(t *testing.T) {
	rects := Grid([]int{3, 3}, 6, testOpts)

	for i, r := range rects {
		if r.Left != 0 || r.Width != 6 {
			t.Errorf("rect %d = %+v, want full width column", i, r)
		}
	}
	if rects[1].Top != 5 {
		t.Errorf("second card top = %d, want 5", rects[1].Top)
	}
}

func TestGrid_Empty(t *testing.T) {
	if rects := Grid(nil, 80, testOpts); rects != nil {
		t.Errorf("Grid(nil) = %v, want nil", rects)
	}
}

func TestMasonry_ShortestColumn(t *testing.T) {
	rects := Masonry([]int{3, 6, 2, 5, 1}, 32, testOpts)

	want := []geom.Rect{
		{Top: 0, Left: 0, Width: 10, Height: 3},
		{Top: 0, Left: 11, Width: 10, Height: 6},
		{Top: 0, Left: 22, Width: 10, Height: 2},
		{Top: 3, Left: 22, Width: 10, Height: 5},
		{Top: 4, Left: 0, Width: 10, Height: 1},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
}

func TestMasonry_TiesGoLeft(t *testing.T) {
	rects := Masonry([]int{2, 2, 2, 2}, 21, testOpts)

	// Two columns; equal heights alternate left then right.
	lefts := []int{0, 11, 0, 11}
	for i, want := range lefts {
		if rects[i].Left != want {
			t.Errorf("rect %d left = %d, want %d", i, rects[i].Left, want)
		}
	}
}

func TestPlace(t *testing.T) {
	heights := []int{3, 6, 2, 5}

	grid := Place(ModeGrid, heights, 32, testOpts)
	masonry := Place(ModeMasonry, heights, 32, testOpts)

	if grid[3].Top != 7 {
		t.Errorf("grid fourth card top = %d, want 7", grid[3].Top)
	}
	if masonry[3].Top != 3 {
		t.Errorf("masonry fourth card top = %d, want 3", masonry[3].Top)
	}
	if unknown := Place(Mode("flex"), heights, 32, testOpts); unknown[3] != grid[3] {
		t.Error("unknown mode should fall back to grid")
	}
}

func TestToggle(t *testing.T) {
	if ModeGrid.Toggle() != ModeMasonry {
		t.Error("grid should toggle to masonry")
	}
	if ModeMasonry.Toggle() != ModeGrid {
		t.Error("masonry should toggle to grid")
	}
}

func TestExtent(t *testing.T) {
	w, h := Extent(Grid([]int{3, 6, 2, 5}, 32, testOpts))
	if w != 32 || h != 12 {
		t.Errorf("Extent() = %d x %d, want 32 x 12", w, h)
	}
}
