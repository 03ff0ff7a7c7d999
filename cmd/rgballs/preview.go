package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgballs/internal/preview"
)

var (
	flagPreviewOut   string
	flagPreviewTile  int
	flagPreviewASCII bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <level>",
	Short: "Render a level to a PNG image",
	Long: `Draws the starting position of a level. The image goes to the file
named by --output, or to stdout with "-o -". With --ascii the level is
printed as text instead.

Examples:
  rgballs preview 1 -o level1.png
  rgballs preview 3 --tile 48 -o big.png
  rgballs preview 2 --ascii`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagPreviewOut, "output", "o", "level.png", "Output file, - for stdout")
	previewCmd.Flags().IntVar(&flagPreviewTile, "tile", preview.DefaultTileSize, "Tile size in pixels")
	previewCmd.Flags().BoolVar(&flagPreviewASCII, "ascii", false, "Print the level as text")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loader, err := openLevels(cfg)
	if err != nil {
		return err
	}
	index, err := levelArg(args[0], loader)
	if err != nil {
		return err
	}
	lvl, err := loader.Load(index)
	if err != nil {
		return err
	}
	w, err := lvl.Build()
	if err != nil {
		return err
	}

	if flagPreviewASCII {
		fmt.Println(preview.RenderASCII(w))
		return nil
	}
	if flagPreviewTile < 4 {
		return fmt.Errorf("tile size must be at least 4, got %d", flagPreviewTile)
	}
	if flagPreviewOut == "-" {
		return preview.EncodePNG(os.Stdout, w, flagPreviewTile)
	}
	if err := preview.SavePNG(flagPreviewOut, w, flagPreviewTile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", flagPreviewOut)
	return nil
}
