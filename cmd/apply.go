package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"datemark/internal"
)

var (
	applyFontSize int
	applyColor    string
	applyPosition string
	applyMargin   int
	applyDryRun   bool
	applyExifTool bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Watermark images with their capture date",
	Long: `Read the capture date embedded in each image and stamp it onto a copy
written to a sibling <dir>_watermark directory. Source files are never
modified. Images without a readable capture date are skipped.

Valid positions:
  ` + internal.AnchorNames(),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}

		// Flags override config defaults only when set.
		if cmd.Flags().Changed("font-size") {
			conf.FontSize = applyFontSize
		}
		if cmd.Flags().Changed("color") {
			conf.Color = applyColor
		}
		if cmd.Flags().Changed("position") {
			conf.Position = applyPosition
		}
		if cmd.Flags().Changed("margin") {
			conf.Margin = applyMargin
		}
		if cmd.Flags().Changed("exiftool") {
			conf.UseExifTool = applyExifTool
		}

		if conf.FontSize <= 0 {
			return fmt.Errorf("font size must be positive, got %d", conf.FontSize)
		}
		if conf.Margin < 0 {
			return fmt.Errorf("margin must be non-negative, got %d", conf.Margin)
		}

		anchor, err := internal.ParseAnchor(conf.Position)
		if err != nil {
			return err
		}

		// Validates the color spec before any file is touched.
		renderer, err := internal.NewRenderer(conf.FontSize, conf.Color)
		if err != nil {
			return err
		}

		var metadata internal.MetadataReader = internal.ExifReader{}
		if conf.UseExifTool {
			et, err := internal.NewExiftoolReader()
			if err != nil {
				return err
			}
			defer et.Close()
			metadata = et
		}

		_, err = internal.Run(args[0], conf, internal.RunOptions{
			Renderer:    renderer,
			Position:    anchor,
			Margin:      conf.Margin,
			JpegQuality: conf.JpegQuality,
			DryRun:      applyDryRun,
			Metadata:    metadata,
		})
		return err
	},
}

func init() {
	applyCmd.Flags().IntVarP(&applyFontSize, "font-size", "s", 36, "Font size for the watermark text")
	applyCmd.Flags().StringVarP(&applyColor, "color", "c", "white", "Watermark color: name, hex (#ffffff) or rgba(r,g,b,a)")
	applyCmd.Flags().StringVarP(&applyPosition, "position", "p", string(internal.BottomRight), "Watermark position")
	applyCmd.Flags().IntVar(&applyMargin, "margin", 20, "Margin from the image edges in pixels")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show what would be written without writing")
	applyCmd.Flags().BoolVar(&applyExifTool, "exiftool", false, "Use the exiftool binary to read metadata")

	rootCmd.AddCommand(applyCmd)
}
