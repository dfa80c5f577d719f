// Package layout implements the contact sheet geometry: page sizes, grid
// planning, cell fill order and thumbnail fitting. Everything here is pure
// and works in PDF points unless a name says otherwise.
package layout

import "math"

const (
	// PointsPerInch is the PDF user space resolution.
	PointsPerInch = 72.0
	// MillimetersPerInch converts metric page sizes.
	MillimetersPerInch = 25.4
)

// MMToPt converts millimeters to PDF points.
func MMToPt(mm float64) float64 {
	return mm * PointsPerInch / MillimetersPerInch
}

// PtToMM converts PDF points to millimeters.
func PtToMM(pt float64) float64 {
	return pt * MillimetersPerInch / PointsPerInch
}

// PtToPx returns the pixel count needed to cover pt points at the given DPI.
func PtToPx(pt, dpi float64) int {
	return int(math.Ceil(pt * dpi / PointsPerInch))
}
