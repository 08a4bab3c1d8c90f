package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"datemark/internal"
)

var (
	inspectFormat   string
	inspectExifTool bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [folder]",
	Short: "Report which images carry an extractable capture date",
	Long: `Scan a folder and report how many images carry a capture date a
watermark run could use, broken down by extension, without writing
anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("folder does not exist or is not a directory: %s", folder)
		}

		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}

		var metadata internal.MetadataReader = internal.ExifReader{}
		if inspectExifTool || conf.UseExifTool {
			et, err := internal.NewExiftoolReader()
			if err != nil {
				return err
			}
			defer et.Close()
			metadata = et
		}

		options := &internal.InspectOptions{
			Format:   inspectFormat,
			Metadata: metadata,
		}

		results, err := internal.InspectFolder(folder, conf, options)
		if err != nil {
			return fmt.Errorf("failed to inspect folder: %w", err)
		}

		return internal.DisplayInspect(results, options)
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format: text or json")
	inspectCmd.Flags().BoolVar(&inspectExifTool, "exiftool", false, "Use the exiftool binary to read metadata")

	rootCmd.AddCommand(inspectCmd)
}
