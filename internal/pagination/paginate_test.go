package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newA4(t *testing.T, opened *[]int) *Cursor {
	t.Helper()
	return NewCursor(Options{PageSize: PageSizeA4, Margin: 25}, func(p int) {
		*opened = append(*opened, p)
	})
}

func TestCursorStartsAtMargin(t *testing.T) {
	var opened []int
	c := newA4(t, &opened)
	if c.Y() != 25 || c.Page() != 1 {
		t.Fatalf("got y=%v page=%d, want y=25 page=1", c.Y(), c.Page())
	}
	if got := c.ContentWidth(); got != 160 {
		t.Errorf("ContentWidth() = %v, want 160", got)
	}
	if got := c.Limit(); got != 272 {
		t.Errorf("Limit() = %v, want 272", got)
	}
	if len(opened) != 0 {
		t.Errorf("callback fired for first page: %v", opened)
	}
}

func TestEnsure(t *testing.T) {
	var opened []int
	c := newA4(t, &opened)

	c.Advance(222) // y = 247, exactly pageHeight-50
	if c.Ensure(50, "section") {
		t.Fatal("Ensure broke at the threshold itself")
	}
	c.Advance(0.5)
	if !c.Ensure(50, "section") {
		t.Fatal("Ensure did not break past the threshold")
	}
	if c.Y() != 25 || c.Page() != 2 {
		t.Errorf("after break got y=%v page=%d", c.Y(), c.Page())
	}

	want := []Break{{From: 1, At: 247.5, Threshold: 50, Reason: "section"}}
	if diff := cmp.Diff(want, c.Breaks()); diff != "" {
		t.Errorf("Breaks() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, opened); diff != "" {
		t.Errorf("opened pages mismatch (-want +got):\n%s", diff)
	}
	if got := c.Pages()[0].MaxY; got != 247.5 {
		t.Errorf("page 1 MaxY = %v, want 247.5", got)
	}
}

func TestEnsureLine(t *testing.T) {
	var opened []int
	c := newA4(t, &opened)
	c.Advance(247) // y = 272, the bottom margin
	if c.EnsureLine("line") {
		t.Fatal("EnsureLine broke on the margin")
	}
	c.Advance(3.5)
	if !c.EnsureLine("line") {
		t.Fatal("EnsureLine did not break below the margin")
	}
}

func TestAdvanceIgnoresNegative(t *testing.T) {
	var opened []int
	c := newA4(t, &opened)
	c.Advance(10)
	c.Advance(-5)
	if c.Y() != 35 {
		t.Errorf("Y() = %v, want 35", c.Y())
	}
}
