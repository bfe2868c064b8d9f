package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;167;139;250mtiles\x1b[0m", "tiles"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"\x1b[31mabc\x1b[0m", 3},
		{"╭──╮", 4},
		{"日本", 4},
		{"", 0},
	}

	for _, tt := range tests {
		if got := MeasureWidth(tt.input); got != tt.want {
			t.Errorf("MeasureWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	output := "header\n\x1b[1mbody\x1b[0m\nfooter"

	if got := Line(output, 1); got != "body" {
		t.Errorf("Line(1) = %q, want body", got)
	}
	if got := Line(output, 3); got != "" {
		t.Errorf("Line(3) = %q, want empty", got)
	}
	if got := Line(output, -1); got != "" {
		t.Errorf("Line(-1) = %q, want empty", got)
	}
}

func TestCells(t *testing.T) {
	output := "..........\n..╭──╮....\n..│KP│...."

	if got := Cells(output, 2, 1, 4); got != "╭──╮" {
		t.Errorf("Cells(2,1,4) = %q, want ╭──╮", got)
	}
	if got := Cells(output, 3, 2, 2); got != "KP" {
		t.Errorf("Cells(3,2,2) = %q, want KP", got)
	}
	if got := Cells(output, 8, 0, 5); got != ".." {
		t.Errorf("Cells past the end = %q, want ..", got)
	}
}

func TestContainsLine(t *testing.T) {
	output := "line one\nline two\nline three"

	if !ContainsLine(output, "two") {
		t.Error("ContainsLine should find 'two'")
	}
	if ContainsLine(output, "four") {
		t.Error("ContainsLine should not find 'four'")
	}
}

func TestFindLine(t *testing.T) {
	output := "first line\nsecond match\nthird line"

	if got := FindLine(output, "match"); got != "second match" {
		t.Errorf("FindLine() = %q, want %q", got, "second match")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine() = %q, want empty", got)
	}
}

func TestAssertContains(t *testing.T) {
	if msg := AssertContains("\x1b[31mhello\x1b[0m world", "hello world"); msg != "" {
		t.Errorf("AssertContains should strip styling, got %q", msg)
	}
	if msg := AssertContains("hello world", "foo"); msg == "" {
		t.Error("AssertContains should report missing substring")
	}
}

func TestAssertNotContains(t *testing.T) {
	if msg := AssertNotContains("hello world", "foo"); msg != "" {
		t.Errorf("AssertNotContains() = %q, want empty", msg)
	}
	if msg := AssertNotContains("hello world", "hello"); msg == "" {
		t.Error("AssertNotContains should report present substring")
	}
}
