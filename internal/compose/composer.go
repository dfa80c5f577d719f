// Package compose lays decoded images out on contact sheet pages and hands
// them to a drawing sink.
package compose

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kozaktomas/contact-sheet/internal/imagefile"
	"github.com/kozaktomas/contact-sheet/internal/layout"
)

// ErrNoImages is returned when nothing could be decoded.
var ErrNoImages = fmt.Errorf("%w: no images found", layout.ErrInvalidConfiguration)

// LabelMode selects the caption printed under each thumbnail.
type LabelMode string

const (
	LabelsNone  LabelMode = "none"
	LabelsIndex LabelMode = "index"
	LabelsName  LabelMode = "name"
)

// ParseLabels parses a caption mode.
func ParseLabels(s string) (LabelMode, error) {
	switch m := LabelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case LabelsNone, LabelsIndex, LabelsName:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown labels mode %q (want none, index or name)", layout.ErrInvalidConfiguration, s)
	}
}

// Sink draws onto pages. Rectangles are in points from the top-left corner.
type Sink interface {
	AddPage()
	DrawImage(rect layout.Rect, jpeg []byte, rotation float64) error
	DrawText(rect layout.Rect, text string)
}

// Progress is advanced once per processed item. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(n int) error
}

// Options is the immutable configuration of one run.
type Options struct {
	Page          layout.PageSpec
	Rows          *int // nil: computed
	Cols          *int // nil: computed
	Order         layout.Order
	Uniform       layout.Orientation
	Labels        LabelMode
	CaptionHeight float64 // points reserved under each cell when labels are on
	MaxPixels     int     // long edge of stored thumbnails
	JPEGQuality   int
	Upscale       bool // allow thumbnails larger than their pixel size
}

// Item is one successfully decoded image.
type Item struct {
	Path   string
	Label  string
	Width  int // pixels, after EXIF orientation
	Height int
	jpeg   []byte
}

// Released reports whether the item's thumbnail data has been dropped.
func (it *Item) Released() bool { return it.jpeg == nil }

// Plan is the layout of a run before anything is drawn.
type Plan struct {
	Grid      layout.GridShape
	Pages     []layout.PageRange
	Positions []layout.Position // one per item
}

// Summary describes a finished composition.
type Summary struct {
	Grid   layout.GridShape
	Pages  int
	Placed int
}

// Composer runs the layout for one contact sheet.
type Composer struct {
	opts    Options
	decoder imagefile.Decoder
}

// New creates a composer.
func New(opts Options, decoder imagefile.Decoder) *Composer {
	return &Composer{opts: opts, decoder: decoder}
}

// Load decodes paths in order. Files that fail to decode are left out and
// reported as warnings; any other error stops the run. Labels are assigned
// after filtering so index captions stay contiguous.
func (c *Composer) Load(paths []string, progress Progress) ([]*Item, []string, error) {
	var items []*Item
	var warnings []string

	for _, path := range paths {
		item, err := c.load(path)
		if progress != nil {
			_ = progress.Add(1)
		}
		if err != nil {
			var decodeErr *imagefile.DecodeError
			if errors.As(err, &decodeErr) {
				warnings = append(warnings, decodeErr.Error())
				continue
			}
			return nil, warnings, err
		}
		items = append(items, item)
	}

	for i, item := range items {
		item.Label = c.label(i, item.Path)
	}
	return items, warnings, nil
}

func (c *Composer) load(path string) (*Item, error) {
	img, err := c.decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	thumb, err := imagefile.MakeThumbnail(img, c.opts.MaxPixels, c.opts.JPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", path, err)
	}
	return &Item{
		Path:   path,
		Width:  thumb.Width,
		Height: thumb.Height,
		jpeg:   thumb.JPEG,
	}, nil
}

func (c *Composer) label(i int, path string) string {
	switch c.opts.Labels {
	case LabelsIndex:
		return strconv.Itoa(i + 1)
	case LabelsName:
		return filepath.Base(path)
	default:
		return ""
	}
}

// captionReserve is the vertical space taken from each cell for captions.
func (c *Composer) captionReserve() float64 {
	if c.opts.Labels == LabelsNone || c.opts.Labels == "" {
		return 0
	}
	return c.opts.CaptionHeight
}

// Plan computes the grid and every item's position for count items. The
// grid is planned once and reused on every page.
func (c *Composer) Plan(count int) (*Plan, error) {
	if count <= 0 {
		return nil, ErrNoImages
	}
	if err := c.opts.Page.Validate(); err != nil {
		return nil, err
	}

	grid, err := c.opts.Page.PlanGrid(count, c.opts.Rows, c.opts.Cols)
	if err != nil {
		return nil, err
	}
	if err := c.opts.Page.ValidateGrid(grid, c.captionReserve()); err != nil {
		return nil, err
	}

	return &Plan{
		Grid:      grid,
		Pages:     layout.Paginate(count, grid.Cells()),
		Positions: layout.AssignPositions(count, grid, c.opts.Order),
	}, nil
}

// Compose draws items onto sink, one page at a time. Each item's thumbnail
// is released as soon as it has been drawn.
func (c *Composer) Compose(items []*Item, sink Sink, progress Progress) (*Summary, error) {
	plan, err := c.Plan(len(items))
	if err != nil {
		return nil, err
	}

	maxScale := 1.0
	if c.opts.Upscale {
		maxScale = 0
	}
	reserve := c.captionReserve()

	placed := 0
	for _, pr := range plan.Pages {
		sink.AddPage()
		for i := pr.Start; i < pr.End; i++ {
			item := items[i]
			pos := plan.Positions[i]

			cell := c.opts.Page.CellRect(plan.Grid, pos.Row, pos.Col)
			area := cell
			area.H -= reserve

			pl := layout.FitScaled(item.Width, item.Height, area, c.opts.Uniform, maxScale)
			rotation := 0.0
			if pl.Rotate90 {
				rotation = c.opts.Uniform.RotationAngle()
			}
			if err := sink.DrawImage(pl.Rect, item.jpeg, rotation); err != nil {
				return nil, fmt.Errorf("failed to draw %s: %w", item.Path, err)
			}
			if reserve > 0 && item.Label != "" {
				sink.DrawText(layout.Rect{
					X: cell.X,
					Y: pl.Rect.Y + pl.Rect.H,
					W: cell.W,
					H: reserve,
				}, item.Label)
			}

			item.jpeg = nil
			placed++
			if progress != nil {
				_ = progress.Add(1)
			}
		}
	}

	return &Summary{
		Grid:   plan.Grid,
		Pages:  len(plan.Pages),
		Placed: placed,
	}, nil
}
