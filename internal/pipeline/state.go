package pipeline

import (
	"fmt"
	"time"

	"hrclean/internal/dataset"
)

// ProcessingLog is the append-only record of every transformation a run
// applied, in order. Entries are never mutated or removed; the report dumps
// them verbatim.
type ProcessingLog struct {
	entries []string
}

// Append adds one entry to the log.
func (l *ProcessingLog) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// Appendf adds one formatted entry to the log.
func (l *ProcessingLog) Appendf(format string, args ...interface{}) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the log in append order.
func (l *ProcessingLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of entries.
func (l *ProcessingLog) Len() int {
	return len(l.entries)
}

// State is the shared run state every stage consumes and updates: the
// dataset, the processing log, and the run's bookkeeping. It is exclusively
// owned by the pipeline driver for the duration of the run.
type State struct {
	Dataset *dataset.Dataset
	Log     *ProcessingLog

	RunID      string
	InputPath  string
	OutputPath string
	ReportPath string
	StartTime  time.Time

	// Shape recorded at load time, before any transformation
	OriginalRows int
	OriginalCols int

	// LastStatus is the one-line outcome of the most recent stage,
	// shown by the console observer.
	LastStatus string
}

// NewState creates the run state for one pipeline execution.
func NewState(runID, inputPath, outputPath, reportPath string) *State {
	return &State{
		Log:        &ProcessingLog{},
		RunID:      runID,
		InputPath:  inputPath,
		OutputPath: outputPath,
		ReportPath: reportPath,
		StartTime:  time.Now(),
	}
}

// Elapsed returns the wall-clock duration since the run started.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
