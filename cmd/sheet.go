package cmd

import (
	"github.com/kozaktomas/contact-sheet/internal/compose"
	"github.com/kozaktomas/contact-sheet/internal/config"
	"github.com/kozaktomas/contact-sheet/internal/constants"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addSheetFlags registers the layout flags shared by every command that lays
// out a sheet.
func addSheetFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML preset with sheet settings (flags override it)")
	fs.String("paper", constants.DefaultPaper, "Paper size (A3, A4, A5, Letter, Legal)")
	fs.String("page-orient", "portrait", "Page orientation: portrait | landscape")
	fs.String("uniform-orient", "portrait", "Force a thumbnail orientation inside the PDF: none | portrait | landscape")
	fs.Int("rows", 0, "Number of rows per page (default: automatic)")
	fs.Int("cols", 0, "Number of columns per page (default: automatic)")
	fs.Float64("margin-mm", constants.DefaultMarginMM, "Page margin (mm)")
	fs.Float64("gap-mm", constants.DefaultGapMM, "Gap between cells (mm)")
	fs.String("labels", "none", "Captions under thumbnails: none | index | name")
	fs.String("order", string(layout.OrderFilmBottomUp), "Grid fill order: row-left-right | film-bottom-up")
	fs.Bool("upscale", false, "Enlarge images smaller than their cell")
	fs.BoolP("recursive", "r", false, "Search for images recursively in subdirectories")
}

// sheetSettings is the resolved configuration of one run.
type sheetSettings struct {
	cfg  *config.Config
	opts compose.Options
}

// loadSheet resolves defaults, environment, the optional preset file and
// explicitly set flags, in that order of precedence.
func loadSheet(cmd *cobra.Command) (*sheetSettings, error) {
	cfg := config.Load()
	if path := flagValue("config", cmd.Flags().GetString); path != "" {
		if err := cfg.LoadPreset(path); err != nil {
			return nil, err
		}
	}
	applySheetFlags(cmd, &cfg.Sheet)

	opts, err := composeOptions(cfg)
	if err != nil {
		return nil, err
	}
	return &sheetSettings{cfg: cfg, opts: opts}, nil
}

func applySheetFlags(cmd *cobra.Command, s *config.SheetConfig) {
	fs := cmd.Flags()

	overrideFlag(cmd, "paper", fs.GetString, &s.Paper)
	overrideFlag(cmd, "page-orient", fs.GetString, &s.PageOrient)
	overrideFlag(cmd, "uniform-orient", fs.GetString, &s.UniformOrient)
	overrideOptionalFlag(cmd, "rows", fs.GetInt, &s.Rows)
	overrideOptionalFlag(cmd, "cols", fs.GetInt, &s.Cols)
	overrideFlag(cmd, "margin-mm", fs.GetFloat64, &s.MarginMM)
	overrideFlag(cmd, "gap-mm", fs.GetFloat64, &s.GapMM)
	overrideFlag(cmd, "labels", fs.GetString, &s.Labels)
	overrideFlag(cmd, "order", fs.GetString, &s.Order)
	overrideFlag(cmd, "upscale", fs.GetBool, &s.Upscale)
	overrideFlag(cmd, "recursive", fs.GetBool, &s.Recursive)
}

// composeOptions validates the sheet settings and converts them into layout types.
func composeOptions(cfg *config.Config) (compose.Options, error) {
	s := cfg.Sheet

	paper, err := cfg.Paper(s.Paper)
	if err != nil {
		return compose.Options{}, err
	}
	pageOrient, err := layout.ParsePageOrientation(s.PageOrient)
	if err != nil {
		return compose.Options{}, err
	}
	uniform, err := layout.ParseOrientation(s.UniformOrient)
	if err != nil {
		return compose.Options{}, err
	}
	order, err := layout.ParseOrder(s.Order)
	if err != nil {
		return compose.Options{}, err
	}
	labels, err := compose.ParseLabels(s.Labels)
	if err != nil {
		return compose.Options{}, err
	}
	page, err := layout.NewPageSpec(paper, pageOrient, s.MarginMM, s.GapMM)
	if err != nil {
		return compose.Options{}, err
	}

	return compose.Options{
		Page:          page,
		Rows:          s.Rows,
		Cols:          s.Cols,
		Order:         order,
		Uniform:       uniform,
		Labels:        labels,
		CaptionHeight: cfg.Render.CaptionHeightPt,
		MaxPixels:     cfg.Render.MaxPixels,
		JPEGQuality:   cfg.Render.JPEGQuality,
		Upscale:       s.Upscale,
	}, nil
}
