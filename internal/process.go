package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// RunOptions carries the per-run knobs the orchestrator needs. The
// renderer and anchor are validated by the caller before the run starts.
type RunOptions struct {
	Renderer    *Renderer
	Position    Anchor
	Margin      int
	JpegQuality int
	DryRun      bool
	Metadata    MetadataReader
}

// Run watermarks every recognized image under inputPath, one file at a
// time, writing results into a sibling output directory. Per-file
// failures are reported and counted but never abort the run; only the
// returned error (setup failures) does.
func Run(inputPath string, cfg *Config, opts RunOptions) (*RunStats, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("Error: path %s does not exist\n", inputPath)
		} else {
			fmt.Printf("Error: cannot access %s: %v\n", inputPath, err)
		}
		return nil, nil
	}

	var files []string
	var baseDir string
	if info.IsDir() {
		files, err = ScanImageFiles(inputPath, cfg)
		if err != nil {
			return nil, err
		}
		baseDir = inputPath
	} else {
		if !IsImageFile(inputPath, cfg) {
			fmt.Printf("Error: %s is not a supported image file\n", inputPath)
			return nil, nil
		}
		files = []string{inputPath}
		baseDir = filepath.Dir(inputPath)
	}

	if len(files) == 0 {
		fmt.Printf("No image files found in %s\n", inputPath)
		return nil, nil
	}

	// Output is a sibling of the input directory, never inside it, so a
	// rerun does not pick up its own results.
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", baseDir, err)
	}
	outputDir := filepath.Join(filepath.Dir(absBase), filepath.Base(absBase)+cfg.OutputSuffix)

	var logger *Logger
	var manifest *RunManifest
	if !opts.DryRun {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
		logger, err = NewLogger(filepath.Join(outputDir, "datemark.log"))
		if err != nil {
			return nil, err
		}
		defer logger.Close()
		manifest, err = NewRunManifest(outputDir)
		if err != nil {
			return nil, err
		}
		defer manifest.Close()
	}

	fmt.Printf("Processing %d image(s)...\n", len(files))
	fmt.Printf("Output directory: %s\n", outputDir)
	if opts.DryRun {
		fmt.Println("Dry run mode: no files will be written")
	}

	stats := NewRunStats()
	for _, file := range files {
		fmt.Printf("Processing: %s\n", filepath.Base(file))

		o := processOne(file, outputDir, opts)
		stats.Add(o)
		report(o, opts.DryRun)

		if logger != nil {
			if o.Err != nil {
				logger.Log("%s: %s (%v)", o.File, o.Outcome, o.Err)
			} else {
				logger.Log("%s: %s", o.File, o.Outcome)
			}
		}
		if manifest != nil {
			if err := manifest.RecordFile(o); err != nil {
				return nil, fmt.Errorf("failed to write manifest: %w", err)
			}
		}
	}

	if manifest != nil {
		if err := manifest.RecordSummary(stats); err != nil {
			return nil, fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	fmt.Println()
	fmt.Println(stats.Summary())
	return stats, nil
}

// processOne runs the full decode → extract → place → stamp → save chain
// for a single file and folds any failure into the returned outcome.
func processOne(path, outputDir string, opts RunOptions) FileOutcome {
	o := FileOutcome{File: path}

	fields, err := opts.Metadata.Fields(path)
	if err != nil {
		fmt.Printf("  Warning: could not read metadata from %s: %v\n", filepath.Base(path), err)
		o.Kind = ErrorKindMetadata
		fields = nil
	}

	date, ok := ExtractDate(fields)
	if !ok {
		o.Outcome = OutcomeSkippedNoDate
		return o
	}
	o.Date = date.String()

	o.Output = filepath.Join(outputDir, filepath.Base(path))
	if opts.DryRun {
		o.Outcome = OutcomeProcessed
		return o
	}

	if kind, err := stampFile(path, o.Output, date.String(), opts); err != nil {
		o.Outcome = OutcomeSkippedError
		o.Kind = kind
		o.Err = err
		return o
	}

	o.Outcome = OutcomeProcessed
	return o
}

// stampFile decodes src, draws text at the configured anchor and writes
// the result to dest at the configured quality.
func stampFile(src, dest, text string, opts RunOptions) (ErrorKind, error) {
	img, err := imaging.Open(src)
	if err != nil {
		return ErrorKindDecode, fmt.Errorf("failed to open image: %w", err)
	}

	canvas := imaging.Clone(img)
	bounds := canvas.Bounds()

	w, h := opts.Renderer.Measure(text)
	x, y := opts.Position.Place(bounds.Dx(), bounds.Dy(), w, h, opts.Margin)
	opts.Renderer.Stamp(canvas, text, x, y)

	if err := imaging.Save(canvas, dest, imaging.JPEGQuality(opts.JpegQuality)); err != nil {
		return ErrorKindSave, fmt.Errorf("failed to save image: %w", err)
	}
	return "", nil
}

func report(o FileOutcome, dryRun bool) {
	switch o.Outcome {
	case OutcomeProcessed:
		fmt.Printf("  Date found: %s\n", o.Date)
		if dryRun {
			fmt.Printf("  [dry-run] would write %s\n", o.Output)
		} else {
			fmt.Printf("  ✓ Saved: %s\n", o.Output)
		}
	case OutcomeSkippedNoDate:
		fmt.Println("  Warning: no date found in metadata, skipping")
	case OutcomeSkippedError:
		fmt.Printf("  ✗ Failed to process: %v\n", o.Err)
	}
}
