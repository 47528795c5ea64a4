package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// AssessStage computes quality diagnostics for the loaded dataset: the exact
// duplicate row count and per-column missing value counts. It only logs;
// the dataset is not mutated.
type AssessStage struct {
	logger *slog.Logger
}

// NewAssessStage creates the quality assessment stage.
func NewAssessStage(logger *slog.Logger) *AssessStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessStage{logger: logger}
}

func (s *AssessStage) ID() string   { return StageIDAssess }
func (s *AssessStage) Name() string { return StageNameAssess }

func (s *AssessStage) Execute(ctx context.Context, state *State) error {
	ds := state.Dataset

	duplicates := ds.DuplicateCount()
	state.Log.Appendf("Found %d duplicate rows", duplicates)

	total := ds.RowCount()
	missingColumns := 0
	headerWritten := false
	for _, col := range ds.Columns {
		missing := ds.MissingCount(col)
		if missing == 0 {
			continue
		}
		if !headerWritten {
			state.Log.Append("Missing values found:")
			headerWritten = true
		}
		pct := 0.0
		if total > 0 {
			pct = float64(missing) / float64(total) * 100
		}
		state.Log.Appendf("  - %s: %d missing (%.1f%%)", col, missing, pct)
		missingColumns++
	}

	state.LastStatus = fmt.Sprintf("Found %d duplicates and missing values in %d columns",
		duplicates, missingColumns)

	s.logger.InfoContext(ctx, "quality assessment complete",
		slog.Int("duplicate_rows", duplicates),
		slog.Int("columns_with_missing", missingColumns))
	return nil
}
