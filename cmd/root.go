package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kozaktomas/contact-sheet/internal/compose"
	"github.com/kozaktomas/contact-sheet/internal/imagefile"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/kozaktomas/contact-sheet/internal/pdfsink"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact-sheet <image-dir>",
	Short: "Create a PDF contact sheet from a folder of images",
	Long: `Contact Sheet lays out every image in a folder as a grid of thumbnails
on one or more A4 pages and writes the result as a PDF.

Thumbnails follow the EXIF orientation of each file. Use --uniform-orient to
turn every thumbnail portrait or landscape inside the PDF; source files are
never modified. Without --rows/--cols the grid is chosen automatically.

Example:
  contact-sheet ~/scans/roll-12
  contact-sheet ~/scans/roll-12 --rows 6 --cols 4 --labels name -o roll-12.pdf
  contact-sheet ~/photos --page-orient landscape --uniform-orient none --order row-left-right`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	addSheetFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringP("output", "o", "", "Output PDF path (default contact_sheet.pdf)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := args[0]

	sheet, err := loadSheet(cmd)
	if err != nil {
		return err
	}
	overrideFlag(cmd, "output", cmd.Flags().GetString, &sheet.cfg.Sheet.Output)

	paths, err := imagefile.List(dir, sheet.cfg.Sheet.Recursive)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no supported images found in %s", layout.ErrInvalidConfiguration, dir)
	}

	composer := compose.New(sheet.opts, imagefile.FileDecoder{})

	// Reject bad grids before spending time on decoding.
	if _, err := composer.Plan(len(paths)); err != nil {
		return err
	}

	fmt.Printf("Found %d image(s) in %s\n", len(paths), dir)

	decodeBar := newProgressBar(len(paths), "Decoding")
	items, warnings, err := composer.Load(paths, decodeBar)
	fmt.Println()

	for _, w := range warnings {
		fmt.Printf("Warning: skipped %s\n", w)
	}
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return compose.ErrNoImages
	}

	doc := pdfsink.New(pdfsink.Options{
		Page:     sheet.opts.Page,
		FontSize: sheet.cfg.Render.FontSize,
		Title:    filepath.Base(filepath.Clean(dir)),
		Creator:  "contact-sheet " + Version,
	})

	composeBar := newProgressBar(len(items), "Composing")
	summary, err := composer.Compose(items, doc, composeBar)
	fmt.Println()
	if err != nil {
		return err
	}

	output := sheet.cfg.Sheet.Output
	if err := doc.Save(output); err != nil {
		return err
	}

	s := sheet.cfg.Sheet
	fmt.Printf("\nDone: %s (%d images, %d pages, grid %dx%d)\n",
		output, summary.Placed, summary.Pages, summary.Grid.Rows, summary.Grid.Cols)
	fmt.Printf("  Page: %s %s. Uniform thumbnails: %s. Order: %s.\n", s.Paper, s.PageOrient, s.UniformOrient, s.Order)
	fmt.Printf("  Margins: %g mm, gaps: %g mm. Labels: %s.\n", s.MarginMM, s.GapMM, s.Labels)
	if len(warnings) > 0 {
		fmt.Printf("  Skipped %d file(s) that could not be decoded.\n", len(warnings))
	}

	return nil
}
