package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunManifest records every file outcome of a watermark run as JSON
// lines in the output directory, so a run can be audited afterwards.
type RunManifest struct {
	f   *os.File
	enc *json.Encoder
}

type manifestRecord struct {
	Time      string `json:"time"`
	Record    string `json:"record"` // "file" or "summary"
	File      string `json:"file,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Error     string `json:"error,omitempty"`
	Date      string `json:"date,omitempty"`
	Output    string `json:"output,omitempty"`
	Processed int    `json:"processed,omitempty"`
	Skipped   int    `json:"skipped,omitempty"`
}

// NewRunManifest creates manifest.jsonl inside outputDir.
func NewRunManifest(outputDir string) (*RunManifest, error) {
	path := filepath.Join(outputDir, "manifest.jsonl")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest %s: %w", path, err)
	}
	return &RunManifest{f: f, enc: json.NewEncoder(f)}, nil
}

func (m *RunManifest) RecordFile(o FileOutcome) error {
	rec := manifestRecord{
		Time:    time.Now().Format(time.RFC3339),
		Record:  "file",
		File:    o.File,
		Outcome: string(o.Outcome),
		Kind:    string(o.Kind),
		Date:    o.Date,
		Output:  o.Output,
	}
	if o.Err != nil {
		rec.Error = o.Err.Error()
	}
	return m.enc.Encode(rec)
}

func (m *RunManifest) RecordSummary(stats *RunStats) error {
	return m.enc.Encode(manifestRecord{
		Time:      time.Now().Format(time.RFC3339),
		Record:    "summary",
		Processed: stats.Processed,
		Skipped:   stats.Skipped,
	})
}

func (m *RunManifest) Close() error {
	return m.f.Close()
}
