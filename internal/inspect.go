package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// InspectOptions configures a folder metadata report.
type InspectOptions struct {
	Format   string // "text" or "json"
	Metadata MetadataReader
}

// InspectResults summarizes how datable the images in a folder are,
// which is a useful dry look before a watermark run.
type InspectResults struct {
	FolderPath   string         `json:"folder_path"`
	TotalImages  int            `json:"total_images"`
	Dated        int            `json:"dated"`
	Undated      int            `json:"undated"`
	Unreadable   int            `json:"unreadable"`
	Extensions   map[string]int `json:"extensions"`
	EarliestDate string         `json:"earliest_date,omitempty"`
	LatestDate   string         `json:"latest_date,omitempty"`
	ScanDuration time.Duration  `json:"scan_duration"`
}

// InspectFolder decodes the metadata of every image in folder and counts
// how many carry an extractable capture date.
func InspectFolder(folder string, cfg *Config, opts *InspectOptions) (*InspectResults, error) {
	start := time.Now()

	files, err := ScanImageFiles(folder, cfg)
	if err != nil {
		return nil, err
	}

	results := &InspectResults{
		FolderPath: folder,
		Extensions: make(map[string]int),
	}

	for _, f := range files {
		results.TotalImages++
		results.Extensions[strings.ToLower(filepath.Ext(f))]++

		fields, err := opts.Metadata.Fields(f)
		if err != nil {
			results.Unreadable++
			results.Undated++
			continue
		}

		date, ok := ExtractDate(fields)
		if !ok {
			results.Undated++
			continue
		}

		results.Dated++
		d := date.String()
		if results.EarliestDate == "" || d < results.EarliestDate {
			results.EarliestDate = d
		}
		if results.LatestDate == "" || d > results.LatestDate {
			results.LatestDate = d
		}
	}

	results.ScanDuration = time.Since(start)
	return results, nil
}

// DisplayInspect prints results in the requested format.
func DisplayInspect(results *InspectResults, opts *InspectOptions) error {
	if opts.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("Folder: %s\n", results.FolderPath)
	fmt.Printf("Images: %d (%d dated, %d undated", results.TotalImages, results.Dated, results.Undated)
	if results.Unreadable > 0 {
		fmt.Printf(", %d unreadable", results.Unreadable)
	}
	fmt.Println(")")

	if len(results.Extensions) > 0 {
		exts := make([]string, 0, len(results.Extensions))
		for ext := range results.Extensions {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		fmt.Println("By extension:")
		for _, ext := range exts {
			fmt.Printf("  %s: %d\n", ext, results.Extensions[ext])
		}
	}

	if results.EarliestDate != "" {
		fmt.Printf("Date range: %s to %s\n", results.EarliestDate, results.LatestDate)
	}
	fmt.Printf("Scan took %s\n", results.ScanDuration.Round(time.Millisecond))
	return nil
}
