package layout

import (
	"fmt"
	"strings"
)

// Order is the sequence in which the cells of one page are filled.
type Order string

const (
	// OrderRowLeftRight fills left to right, top to bottom.
	OrderRowLeftRight Order = "row-left-right"
	// OrderFilmBottomUp fills each column from the bottom cell upward, then
	// moves one column to the right, like frames on a strip of 35mm film.
	OrderFilmBottomUp Order = "film-bottom-up"
)

// ParseOrder parses a fill order name.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case OrderRowLeftRight, OrderFilmBottomUp:
		return o, nil
	default:
		return "", fmt.Errorf("%w: unknown order %q (want %s or %s)", ErrInvalidConfiguration, s, OrderRowLeftRight, OrderFilmBottomUp)
	}
}

// Position is a cell on a specific page. Row 0 is the top row.
type Position struct {
	Page int
	Row  int
	Col  int
}

// CellForIndex maps a page-local item ordinal to its (row, col).
func CellForIndex(idx, rows, cols int, order Order) (row, col int) {
	if order == OrderFilmBottomUp {
		col = idx / rows
		row = rows - 1 - idx%rows
		return row, col
	}
	return idx / cols, idx % cols
}

// AssignPositions returns one position per item, in item order. Items fill
// pages in input order; order only changes where an item lands within its page.
func AssignPositions(itemCount int, shape GridShape, order Order) []Position {
	if itemCount <= 0 || shape.Cells() <= 0 {
		return nil
	}
	perPage := shape.Cells()
	positions := make([]Position, itemCount)
	for i := 0; i < itemCount; i++ {
		row, col := CellForIndex(i%perPage, shape.Rows, shape.Cols, order)
		positions[i] = Position{Page: i / perPage, Row: row, Col: col}
	}
	return positions
}

// PageRange is a half-open [Start, End) range of item indexes on one page.
type PageRange struct {
	Start int
	End   int
}

// Len returns the number of items on the page.
func (r PageRange) Len() int { return r.End - r.Start }

// Paginate splits n items into pages of perPage items.
func Paginate(n, perPage int) []PageRange {
	if n <= 0 || perPage <= 0 {
		return nil
	}
	pages := make([]PageRange, 0, ceilDiv(n, perPage))
	for start := 0; start < n; start += perPage {
		pages = append(pages, PageRange{Start: start, End: min(start+perPage, n)})
	}
	return pages
}
