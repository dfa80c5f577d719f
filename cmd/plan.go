package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/kozaktomas/contact-sheet/internal/compose"
	"github.com/kozaktomas/contact-sheet/internal/imagefile"
	"github.com/kozaktomas/contact-sheet/internal/layout"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <image-dir>",
	Short: "Show where each image would be placed without writing a PDF",
	Long: `Lists the grid, the number of pages and the page/row/column of every image
using the same settings as the main command. Images are not decoded, so
files that turn out to be unreadable are still listed here.

Example:
  contact-sheet plan ~/scans/roll-12 --rows 6 --cols 4`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	dir := args[0]

	sheet, err := loadSheet(cmd)
	if err != nil {
		return err
	}

	paths, err := imagefile.List(dir, sheet.cfg.Sheet.Recursive)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no supported images found in %s", layout.ErrInvalidConfiguration, dir)
	}

	plan, err := compose.New(sheet.opts, imagefile.FileDecoder{}).Plan(len(paths))
	if err != nil {
		return err
	}

	cellW, cellH := sheet.opts.Page.CellSize(plan.Grid)
	fmt.Printf("Images: %d\n", len(paths))
	fmt.Printf("Grid:   %d rows x %d cols (%.1f x %.1f mm cells)\n",
		plan.Grid.Rows, plan.Grid.Cols, layout.PtToMM(cellW), layout.PtToMM(cellH))
	fmt.Printf("Pages:  %d\n\n", len(plan.Pages))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tROW\tCOL\tFILE")
	fmt.Fprintln(w, "----\t---\t---\t----")

	for i, pos := range plan.Positions {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", pos.Page+1, pos.Row+1, pos.Col+1, filepath.Base(paths[i]))
	}

	w.Flush()
	return nil
}
