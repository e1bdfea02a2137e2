package render_test

import (
	"testing"

	"vacancy_report_go/render"
)

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name      string
		indexes   []int
		n         int
		wantStart int
		wantEnd   int
	}{
		{"no range means all rows", nil, 10, 0, 10},
		{"single value starts there", []int{4}, 10, 3, 10},
		{"pair is end-exclusive", []int{2, 5}, 10, 1, 4},
		{"end clamped to result length", []int{2, 50}, 10, 1, 10},
		{"start past the result yields empty", []int{15}, 10, 10, 10},
		{"zero start clamps to first row", []int{0}, 10, 0, 10},
		{"empty result", nil, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end := render.PageBounds(c.indexes, c.n)
			if start != c.wantStart || end != c.wantEnd {
				t.Errorf("PageBounds(%v, %d) = (%d, %d), want (%d, %d)",
					c.indexes, c.n, start, end, c.wantStart, c.wantEnd)
			}
		})
	}
}

func TestPageBounds_SingleValueRowCount(t *testing.T) {
	// A single index A over N rows yields N-A+1 rows.
	start, end := render.PageBounds([]int{4}, 10)
	if got := end - start; got != 7 {
		t.Errorf("rows = %d, want 7", got)
	}
}
