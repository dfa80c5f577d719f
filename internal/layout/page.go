package layout

import (
	"fmt"
	"strings"
)

// Orientation is used both for pages and for the uniform thumbnail policy.
type Orientation string

const (
	OrientNone      Orientation = "none"
	OrientPortrait  Orientation = "portrait"
	OrientLandscape Orientation = "landscape"
)

// ParseOrientation parses a thumbnail orientation policy.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case OrientNone, OrientPortrait, OrientLandscape:
		return o, nil
	default:
		return "", fmt.Errorf("%w: unknown orientation %q (want none, portrait or landscape)", ErrInvalidConfiguration, s)
	}
}

// ParsePageOrientation parses a page orientation; "none" is not a page orientation.
func ParsePageOrientation(s string) (Orientation, error) {
	o, err := ParseOrientation(s)
	if err != nil {
		return "", err
	}
	if o == OrientNone {
		return "", fmt.Errorf("%w: page orientation must be portrait or landscape", ErrInvalidConfiguration)
	}
	return o, nil
}

// RotationAngle returns the counter-clockwise rotation in degrees that turns
// a thumbnail of the opposite orientation into o.
func (o Orientation) RotationAngle() float64 {
	switch o {
	case OrientPortrait:
		return 90
	case OrientLandscape:
		return -90
	default:
		return 0
	}
}

// Paper is a physical sheet size in portrait orientation (mm).
type Paper struct {
	Name     string  `yaml:"name"`
	WidthMM  float64 `yaml:"width_mm"`
	HeightMM float64 `yaml:"height_mm"`
}

// A4 is the default paper size.
var A4 = Paper{Name: "A4", WidthMM: 210, HeightMM: 297}

// Rect is an axis-aligned rectangle in points, origin at the top-left page corner.
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether other lies within r, with a small tolerance for
// floating point noise.
func (r Rect) Contains(other Rect) bool {
	const eps = 1e-6
	return other.X >= r.X-eps && other.Y >= r.Y-eps &&
		other.X+other.W <= r.X+r.W+eps && other.Y+other.H <= r.Y+r.H+eps
}

// PageSpec describes one page of the contact sheet. All pages of a run share
// the same spec.
type PageSpec struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64
	GapMM    float64
}

// NewPageSpec orients paper and validates margins and gaps.
func NewPageSpec(paper Paper, orient Orientation, marginMM, gapMM float64) (PageSpec, error) {
	w, h := paper.WidthMM, paper.HeightMM
	if w > h {
		w, h = h, w
	}
	switch orient {
	case OrientPortrait:
	case OrientLandscape:
		w, h = h, w
	default:
		return PageSpec{}, fmt.Errorf("%w: page orientation must be portrait or landscape, got %q", ErrInvalidConfiguration, orient)
	}

	spec := PageSpec{WidthMM: w, HeightMM: h, MarginMM: marginMM, GapMM: gapMM}
	if err := spec.Validate(); err != nil {
		return PageSpec{}, err
	}
	return spec, nil
}

// Validate checks the page-level invariants that do not depend on the grid.
func (p PageSpec) Validate() error {
	if p.WidthMM <= 0 || p.HeightMM <= 0 {
		return fmt.Errorf("%w: paper size %.1fx%.1f mm is not positive", ErrInvalidConfiguration, p.WidthMM, p.HeightMM)
	}
	if p.MarginMM < 0 {
		return fmt.Errorf("%w: margin %.2f mm is negative", ErrInvalidConfiguration, p.MarginMM)
	}
	if p.GapMM < 0 {
		return fmt.Errorf("%w: gap %.2f mm is negative", ErrInvalidConfiguration, p.GapMM)
	}
	if p.UsableWidthMM() <= 0 || p.UsableHeightMM() <= 0 {
		return fmt.Errorf("%w: margin %.2f mm leaves no usable area on a %.1fx%.1f mm page",
			ErrInvalidConfiguration, p.MarginMM, p.WidthMM, p.HeightMM)
	}
	return nil
}

// WidthPt returns the page width in points.
func (p PageSpec) WidthPt() float64 { return MMToPt(p.WidthMM) }

// HeightPt returns the page height in points.
func (p PageSpec) HeightPt() float64 { return MMToPt(p.HeightMM) }

// UsableWidthMM is the page width minus both margins.
func (p PageSpec) UsableWidthMM() float64 { return p.WidthMM - 2*p.MarginMM }

// UsableHeightMM is the page height minus both margins.
func (p PageSpec) UsableHeightMM() float64 { return p.HeightMM - 2*p.MarginMM }

// Aspect is the width/height ratio of the usable area.
func (p PageSpec) Aspect() float64 { return p.UsableWidthMM() / p.UsableHeightMM() }

// Usable returns the usable area in points.
func (p PageSpec) Usable() Rect {
	m := MMToPt(p.MarginMM)
	return Rect{
		X: m,
		Y: m,
		W: MMToPt(p.UsableWidthMM()),
		H: MMToPt(p.UsableHeightMM()),
	}
}

// CellSize returns the size of one cell in points for the given grid.
func (p PageSpec) CellSize(shape GridShape) (w, h float64) {
	u := p.Usable()
	gap := MMToPt(p.GapMM)
	w = (u.W - gap*float64(shape.Cols-1)) / float64(shape.Cols)
	h = (u.H - gap*float64(shape.Rows-1)) / float64(shape.Rows)
	return w, h
}

// ValidateGrid checks that the grid leaves positive room for each cell.
// reservePt is vertical space taken from every cell (the caption strip).
func (p PageSpec) ValidateGrid(shape GridShape, reservePt float64) error {
	if shape.Rows < 1 || shape.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d must have at least one row and column", ErrInvalidConfiguration, shape.Rows, shape.Cols)
	}
	usableW := p.UsableWidthMM() - float64(shape.Cols-1)*p.GapMM
	usableH := p.UsableHeightMM() - float64(shape.Rows-1)*p.GapMM
	if usableW <= 0 {
		return fmt.Errorf("%w: %d columns with %.2f mm gaps exceed the usable width of %.2f mm",
			ErrInvalidConfiguration, shape.Cols, p.GapMM, p.UsableWidthMM())
	}
	if usableH <= 0 {
		return fmt.Errorf("%w: %d rows with %.2f mm gaps exceed the usable height of %.2f mm",
			ErrInvalidConfiguration, shape.Rows, p.GapMM, p.UsableHeightMM())
	}
	if _, h := p.CellSize(shape); h-reservePt <= 0 {
		return fmt.Errorf("%w: cells of %.2f pt leave no room for images below a %.2f pt caption",
			ErrInvalidConfiguration, h, reservePt)
	}
	return nil
}

// CellRect returns the rectangle of cell (row, col). Row 0 is the top row.
func (p PageSpec) CellRect(shape GridShape, row, col int) Rect {
	u := p.Usable()
	gap := MMToPt(p.GapMM)
	w, h := p.CellSize(shape)
	return Rect{
		X: u.X + float64(col)*(w+gap),
		Y: u.Y + float64(row)*(h+gap),
		W: w,
		H: h,
	}
}
