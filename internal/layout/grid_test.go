package layout

import (
	"errors"
	"math"
	"testing"
)

// Usable area aspect of A4 with 10mm margins.
const (
	a4PortraitAspect  = 190.0 / 277.0
	a4LandscapeAspect = 277.0 / 190.0
)

func intPtr(n int) *int { return &n }

func TestPlanGrid_Explicit(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		rows     *int
		cols     *int
		expected GridShape
	}{
		{"both given", 10, intPtr(2), intPtr(2), GridShape{Rows: 2, Cols: 2}},
		{"both given larger than needed", 3, intPtr(5), intPtr(4), GridShape{Rows: 5, Cols: 4}},
		{"rows only", 10, intPtr(3), nil, GridShape{Rows: 3, Cols: 4}},
		{"cols only", 10, nil, intPtr(4), GridShape{Rows: 3, Cols: 4}},
		{"cols only exact", 12, nil, intPtr(4), GridShape{Rows: 3, Cols: 4}},
		{"rows exceed items", 2, intPtr(5), nil, GridShape{Rows: 5, Cols: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanGrid(tt.n, a4PortraitAspect, tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("PlanGrid = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPlanGrid_Invalid(t *testing.T) {
	tests := []struct {
		name string
		n    int
		rows *int
		cols *int
	}{
		{"no items", 0, nil, nil},
		{"negative items", -1, nil, nil},
		{"zero rows", 5, intPtr(0), nil},
		{"negative cols", 5, nil, intPtr(-2)},
		{"zero rows with cols", 5, intPtr(0), intPtr(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanGrid(tt.n, a4PortraitAspect, tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestPlanGrid_AutoMinimal(t *testing.T) {
	for _, aspect := range []float64{a4PortraitAspect, a4LandscapeAspect, 1} {
		for n := 1; n <= 200; n++ {
			g, err := PlanGrid(n, aspect, nil, nil)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			if g.Rows < 1 || g.Cols < 1 {
				t.Fatalf("n=%d: degenerate grid %v", n, g)
			}
			if g.Cells() < n {
				t.Errorf("n=%d aspect=%.3f: grid %v holds only %d items", n, aspect, g, g.Cells())
			}
			if (g.Rows-1)*g.Cols >= n {
				t.Errorf("n=%d aspect=%.3f: grid %v still fits with one row less", n, aspect, g)
			}
			if g.Rows*(g.Cols-1) >= n {
				t.Errorf("n=%d aspect=%.3f: grid %v still fits with one column less", n, aspect, g)
			}
		}
	}
}

func TestPlanGrid_AutoFewestEmptyCells(t *testing.T) {
	for _, aspect := range []float64{a4PortraitAspect, a4LandscapeAspect, 1} {
		target := targetAspect(aspect)
		for n := 1; n <= 200; n++ {
			g, err := PlanGrid(n, aspect, nil, nil)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			least := -1
			for _, s := range minimalShapes(n) {
				a := aspect * float64(s.Rows) / float64(s.Cols)
				if skew(a, target) > math.Log(maxCellSkew) {
					continue
				}
				if waste := s.Cells() - n; least < 0 || waste < least {
					least = waste
				}
			}
			if least >= 0 && g.Cells()-n != least {
				t.Errorf("n=%d aspect=%.3f: grid %v leaves %d empty cells, %d is possible",
					n, aspect, g, g.Cells()-n, least)
			}
		}
	}
}

func TestPlanGrid_AutoShapes(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		aspect   float64
		expected GridShape
	}{
		{"single image", 1, a4PortraitAspect, GridShape{Rows: 1, Cols: 1}},
		{"twelve on portrait", 12, a4PortraitAspect, GridShape{Rows: 3, Cols: 4}},
		// One empty cell beats the two a 3x3 grid would leave.
		{"seven on portrait", 7, a4PortraitAspect, GridShape{Rows: 2, Cols: 4}},
		{"eight on portrait", 8, a4PortraitAspect, GridShape{Rows: 2, Cols: 4}},
		{"twenty four on portrait", 24, a4PortraitAspect, GridShape{Rows: 4, Cols: 6}},
		{"twelve on landscape", 12, a4LandscapeAspect, GridShape{Rows: 4, Cols: 3}},
		// 1x7 and 7x1 fill every cell but their cells are strips.
		{"seven strips rejected", 7, a4LandscapeAspect, GridShape{Rows: 4, Cols: 2}},
		{"two on portrait", 2, a4PortraitAspect, GridShape{Rows: 1, Cols: 2}},
		// Equal distance from a square target: fewer rows wins.
		{"two on square", 2, 1, GridShape{Rows: 1, Cols: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanGrid(tt.n, tt.aspect, nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("PlanGrid(%d) = %v, want %v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestPlanGrid_AutoRejectsBadAspect(t *testing.T) {
	if _, err := PlanGrid(4, 0, nil, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for zero aspect, got %v", err)
	}
}

func TestPageSpec_PlanGrid(t *testing.T) {
	page, err := NewPageSpec(A4, OrientPortrait, 10, 2)
	if err != nil {
		t.Fatalf("NewPageSpec: %v", err)
	}

	tests := []struct {
		name     string
		n        int
		rows     *int
		cols     *int
		expected GridShape
	}{
		{"eight", 8, nil, nil, GridShape{Rows: 2, Cols: 4}},
		{"twenty four", 24, nil, nil, GridShape{Rows: 4, Cols: 6}},
		{"twelve", 12, nil, nil, GridShape{Rows: 3, Cols: 4}},
		{"cols given", 10, nil, intPtr(4), GridShape{Rows: 3, Cols: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.PlanGrid(tt.n, tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("PlanGrid(%d) = %v, want %v", tt.n, got, tt.expected)
			}
		})
	}

	if _, err := page.PlanGrid(0, nil, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration for no items, got %v", err)
	}
}

func TestPageSpec_PlanGridWithoutGapsMatchesAspect(t *testing.T) {
	for _, orient := range []Orientation{OrientPortrait, OrientLandscape} {
		page, err := NewPageSpec(A4, orient, 10, 0)
		if err != nil {
			t.Fatalf("NewPageSpec: %v", err)
		}
		for n := 1; n <= 100; n++ {
			got, err := page.PlanGrid(n, nil, nil)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			want, _ := PlanGrid(n, page.Aspect(), nil, nil)
			if got != want {
				t.Errorf("%s n=%d: page grid %v, aspect grid %v", orient, n, got, want)
			}
		}
	}
}

func TestMinimalShapes(t *testing.T) {
	got := minimalShapes(7)
	expected := []GridShape{{1, 7}, {2, 4}, {3, 3}, {4, 2}, {7, 1}}
	if len(got) != len(expected) {
		t.Fatalf("minimalShapes(7) = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("shape %d: got %v, want %v", i, got[i], expected[i])
		}
	}
}
