package internal

import "fmt"

// ErrorKind classifies why a file failed during a run.
type ErrorKind string

const (
	ErrorKindMetadata ErrorKind = "metadata_error" // embedded metadata could not be decoded
	ErrorKindDecode   ErrorKind = "decode_error"   // image could not be opened or decoded
	ErrorKindSave     ErrorKind = "save_error"     // watermarked output could not be encoded or written
)

// OutcomeKind states what happened to one input file.
type OutcomeKind string

const (
	OutcomeProcessed     OutcomeKind = "processed"
	OutcomeSkippedNoDate OutcomeKind = "skipped_no_date"
	OutcomeSkippedError  OutcomeKind = "skipped_error"
)

// FileOutcome is the per-file result of a watermark run. Per-file
// failures are values, not propagated errors: the run continues past
// them and the orchestrator aggregates the tally.
type FileOutcome struct {
	File    string
	Outcome OutcomeKind
	Kind    ErrorKind
	Err     error
	Date    string
	Output  string
}

// RunStats aggregates file outcomes into the final tally.
type RunStats struct {
	Processed int
	Skipped   int
	ByKind    map[ErrorKind]int
}

func NewRunStats() *RunStats {
	return &RunStats{
		ByKind: make(map[ErrorKind]int),
	}
}

func (s *RunStats) Add(o FileOutcome) {
	switch o.Outcome {
	case OutcomeProcessed:
		s.Processed++
	default:
		s.Skipped++
	}
	if o.Kind != "" {
		s.ByKind[o.Kind]++
	}
}

// Summary is the final line reported to the user.
func (s *RunStats) Summary() string {
	return fmt.Sprintf("Completed: %d processed, %d skipped", s.Processed, s.Skipped)
}
