// Package pdfsink writes contact sheet pages with go-pdf/fpdf.
package pdfsink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"golang.org/x/text/unicode/norm"
)

const captionFont = "Helvetica"

// Options configure a new PDF document.
type Options struct {
	Page     layout.PageSpec
	FontSize float64 // caption font size in points
	Title    string
	Creator  string
}

// PDF is a contact sheet document. Coordinates are points with the origin at
// the top-left page corner.
type PDF struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	fontSize  float64
	pages     int
	images    int
}

// New creates an empty document with one page size for every page.
func New(opts Options) *PDF {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: opts.Page.WidthPt(), Ht: opts.Page.HeightPt()},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}

	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 7
	}

	return &PDF{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		fontSize:  fontSize,
	}
}

// AddPage starts a new page.
func (p *PDF) AddPage() {
	p.pdf.AddPage()
	p.pages++
}

// PageCount returns the number of pages added so far.
func (p *PDF) PageCount() int { return p.pages }

// DrawImage places a JPEG so that it covers rect. A non-zero rotation turns
// the image counter-clockwise by that many degrees around the rect center;
// rect is the footprint after the turn.
func (p *PDF) DrawImage(rect layout.Rect, jpegData []byte, rotation float64) error {
	if p.pages == 0 {
		return fmt.Errorf("no page to draw on")
	}
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	opts := fpdf.ImageOptions{ImageType: "JPEG"}
	p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpegData))
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("failed to register image: %w", err)
	}

	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	if rotation != 0 {
		// The unrotated image has the footprint's sides swapped and shares its center.
		w, h = rect.H, rect.W
		x = rect.CenterX() - w/2
		y = rect.CenterY() - h/2
		p.pdf.TransformBegin()
		p.pdf.TransformRotate(rotation, rect.CenterX(), rect.CenterY())
	}
	p.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if rotation != 0 {
		p.pdf.TransformEnd()
	}
	return p.pdf.Error()
}

// DrawText writes a single centered caption line inside rect, shortened
// with "..." when it does not fit.
func (p *PDF) DrawText(rect layout.Rect, text string) {
	if p.pages == 0 || text == "" {
		return
	}
	p.pdf.SetFont(captionFont, "", p.fontSize)
	p.pdf.SetTextColor(0, 0, 0)

	line := p.fit(p.translate(norm.NFC.String(text)), rect.W)
	p.pdf.SetXY(rect.X, rect.Y)
	p.pdf.CellFormat(rect.W, rect.H, line, "", 0, "CM", false, 0, "")
}

// fit trims s from the end until it fits in width points.
func (p *PDF) fit(s string, width float64) string {
	if p.pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 {
		s = s[:len(s)-1]
		if p.pdf.GetStringWidth(s+ellipsis) <= width {
			return strings.TrimRight(s, " ") + ellipsis
		}
	}
	return ""
}

// Save writes the document to path. The file is written next to path under
// a temporary name and renamed into place, so a failed write never leaves a
// partial PDF behind.
func (p *PDF) Save(path string) error {
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("failed to build PDF: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".contact-sheet-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := p.pdf.Output(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
