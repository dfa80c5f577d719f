// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Sheet defaults
const (
	// DefaultPaper is the paper size used when none is configured
	DefaultPaper = "A4"

	// DefaultMarginMM is the page margin on every side
	DefaultMarginMM = 10.0

	// DefaultGapMM is the space between neighbouring cells
	DefaultGapMM = 2.0

	// DefaultOutput is the PDF written when -o is not given
	DefaultOutput = "contact_sheet.pdf"
)

// Rendering constants
const (
	// MaxImageSize is the maximum dimension (width or height) of an embedded thumbnail
	MaxImageSize = 1920

	// DefaultJPEGQuality is the quality used when re-encoding thumbnails
	DefaultJPEGQuality = 85

	// DefaultFontSize is the caption font size in points
	DefaultFontSize = 7.0

	// DefaultCaptionHeightPt is the strip reserved under each thumbnail for its caption
	DefaultCaptionHeightPt = 10.0
)
