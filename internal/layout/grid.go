package layout

import (
	"fmt"
	"math"
)

// GridShape is the number of rows and columns on every page.
type GridShape struct {
	Rows int
	Cols int
}

// Cells returns the number of cells on one page.
func (g GridShape) Cells() int { return g.Rows * g.Cols }

func (g GridShape) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// Target cell aspects (width/height) for auto grids.
const (
	portraitTarget  = 2.0 / 3.0
	landscapeTarget = 3.0 / 2.0

	// maxCellSkew bounds how far a cell aspect may stray from the target
	// before the shape is only used as a last resort.
	maxCellSkew = 4.0
)

// aspectFunc returns the width/height ratio of one cell of a shape.
type aspectFunc func(GridShape) float64

// PlanGrid chooses the grid shape for itemCount items. rows and cols are
// optional; a nil value means "choose for me". pageAspect is the usable
// width/height ratio of the page; auto grids built from it ignore gaps.
func PlanGrid(itemCount int, pageAspect float64, rows, cols *int) (GridShape, error) {
	if shape, done, err := explicitGrid(itemCount, rows, cols); done {
		return shape, err
	}
	if pageAspect <= 0 || math.IsNaN(pageAspect) || math.IsInf(pageAspect, 0) {
		return GridShape{}, fmt.Errorf("%w: page aspect %v is not positive", ErrInvalidConfiguration, pageAspect)
	}
	return autoGrid(itemCount, pageAspect, func(s GridShape) float64 {
		return pageAspect * float64(s.Rows) / float64(s.Cols)
	}), nil
}

// PlanGrid is PlanGrid with cell aspects measured on this page, gaps included.
func (p PageSpec) PlanGrid(itemCount int, rows, cols *int) (GridShape, error) {
	if shape, done, err := explicitGrid(itemCount, rows, cols); done {
		return shape, err
	}
	if err := p.Validate(); err != nil {
		return GridShape{}, err
	}
	return autoGrid(itemCount, p.Aspect(), func(s GridShape) float64 {
		w, h := p.CellSize(s)
		if w <= 0 || h <= 0 {
			return 0
		}
		return w / h
	}), nil
}

// explicitGrid handles validation and the rows/cols overrides. done is false
// only when the shape is left to autoGrid.
func explicitGrid(itemCount int, rows, cols *int) (shape GridShape, done bool, err error) {
	if itemCount <= 0 {
		return GridShape{}, true, fmt.Errorf("%w: no images found", ErrInvalidConfiguration)
	}
	if rows != nil && *rows <= 0 {
		return GridShape{}, true, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfiguration, *rows)
	}
	if cols != nil && *cols <= 0 {
		return GridShape{}, true, fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfiguration, *cols)
	}

	switch {
	case rows != nil && cols != nil:
		return GridShape{Rows: *rows, Cols: *cols}, true, nil
	case rows != nil:
		return GridShape{Rows: *rows, Cols: ceilDiv(itemCount, *rows)}, true, nil
	case cols != nil:
		return GridShape{Rows: ceilDiv(itemCount, *cols), Cols: *cols}, true, nil
	}
	return GridShape{}, false, nil
}

// autoGrid picks among the minimal shapes for n: fewest empty cells first,
// then the cell aspect closest to a photo frame matching the page
// orientation, then fewer rows. Shapes whose cells are more than maxCellSkew
// away from that frame (1xN strips and the like) only compete when nothing
// else is left.
func autoGrid(n int, pageAspect float64, aspect aspectFunc) GridShape {
	target := targetAspect(pageAspect)

	var all, usable []GridShape
	for _, s := range minimalShapes(n) {
		all = append(all, s)
		if skew(aspect(s), target) <= math.Log(maxCellSkew) {
			usable = append(usable, s)
		}
	}

	candidates := all
	if len(usable) > 0 {
		candidates = usable
	}

	best := candidates[0]
	for _, s := range candidates[1:] {
		if betterShape(s, best, n, aspect, target) {
			best = s
		}
	}
	return best
}

func betterShape(a, b GridShape, n int, aspect aspectFunc, target float64) bool {
	wasteA, wasteB := a.Cells()-n, b.Cells()-n
	if wasteA != wasteB {
		return wasteA < wasteB
	}
	const eps = 1e-9
	da, db := skew(aspect(a), target), skew(aspect(b), target)
	if math.Abs(da-db) > eps {
		return da < db
	}
	return a.Rows < b.Rows
}

// skew is the log distance between a cell aspect and the target.
func skew(a, target float64) float64 {
	if a <= 0 {
		return math.Inf(1)
	}
	return math.Abs(math.Log(a / target))
}

// minimalShapes lists every shape that holds n items and loses that property
// when either a row or a column is removed. Shapes come out in increasing
// row order.
func minimalShapes(n int) []GridShape {
	var shapes []GridShape
	for rows := 1; rows <= n; rows++ {
		cols := ceilDiv(n, rows)
		if ceilDiv(n, cols) != rows {
			// Fewer rows would still fit with this column count.
			continue
		}
		shapes = append(shapes, GridShape{Rows: rows, Cols: cols})
	}
	return shapes
}

func targetAspect(pageAspect float64) float64 {
	const eps = 1e-9
	switch {
	case pageAspect < 1-eps:
		return portraitTarget
	case pageAspect > 1+eps:
		return landscapeTarget
	default:
		return 1
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
