package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tiles/internal/ui/testutil"
)

func TestBlank(t *testing.T) {
	got := Blank(3, 2)
	if got != "   \n   " {
		t.Errorf("Blank(3, 2) = %q", got)
	}
	if Blank(0, 5) != "" || Blank(5, 0) != "" {
		t.Error("Blank with zero size should be empty")
	}
}

func TestPlace(t *testing.T) {
	base := "......\n......\n......"
	block := "ab\ncd"

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{
			name: "inside",
			x:    1, y: 1,
			want: "......\n.ab...\n.cd...",
		},
		{
			name: "top left corner",
			x:    0, y: 0,
			want: "ab....\ncd....\n......",
		},
		{
			name: "clipped left",
			x:    -1, y: 0,
			want: "b.....\nd.....\n......",
		},
		{
			name: "clipped right",
			x:    5, y: 0,
			want: ".....a\n.....c\n......",
		},
		{
			name: "clipped top",
			x:    0, y: -1,
			want: "cd....\n......\n......",
		},
		{
			name: "clipped bottom",
			x:    0, y: 2,
			want: "......\n......\nab....",
		},
		{
			name: "fully outside",
			x:    10, y: 0,
			want: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(base, block, tt.x, tt.y, 6)
			if got != tt.want {
				t.Errorf("Place() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPlace_SpacesAreOpaque(t *testing.T) {
	got := Place("xxxx", "a  b", 0, 0, 4)
	if got != "a  b" {
		t.Errorf("Place() = %q, want %q", got, "a  b")
	}
}

func TestPlace_PadsShortBaseLines(t *testing.T) {
	got := Place("x", "ab", 3, 0, 6)
	if got != "x  ab " {
		t.Errorf("Place() = %q, want %q", got, "x  ab ")
	}
}

func TestPlace_Styled(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	base := style.Render("......")
	block := style.Render("ab")

	got := Place(base, block, 2, 0, 6)

	if plain := testutil.StripANSI(got); plain != "..ab.." {
		t.Errorf("Place() visible = %q, want %q", plain, "..ab..")
	}
	if strings.Count(testutil.StripANSI(got), "\n") != 0 {
		t.Error("Place() should not add lines")
	}
}

func TestPlace_Stacking(t *testing.T) {
	view := Blank(5, 1)
	view = Place(view, "aaa", 0, 0, 5)
	view = Place(view, "bbb", 2, 0, 5)

	if view != "aabbb" {
		t.Errorf("later block should draw on top, got %q", view)
	}
}
