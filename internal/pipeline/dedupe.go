package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// DedupeStage removes rows that are exact duplicates of an earlier row. The
// first occurrence is retained and survivor order is preserved, so running
// the stage twice removes nothing the second time.
type DedupeStage struct {
	logger *slog.Logger
}

// NewDedupeStage creates the duplicate removal stage.
func NewDedupeStage(logger *slog.Logger) *DedupeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DedupeStage{logger: logger}
}

func (s *DedupeStage) ID() string   { return StageIDDedupe }
func (s *DedupeStage) Name() string { return StageNameDedupe }

func (s *DedupeStage) Execute(ctx context.Context, state *State) error {
	ds := state.Dataset
	initial := ds.RowCount()

	seen := make(map[string]bool, initial)
	kept := ds.Rows[:0]
	for i := range ds.Rows {
		key := ds.RowKey(i)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, ds.Rows[i])
	}
	ds.Rows = kept

	removed := initial - ds.RowCount()
	state.Log.Appendf("Removed %d duplicate rows", removed)
	state.LastStatus = fmt.Sprintf("Removed %d duplicate records", removed)

	s.logger.InfoContext(ctx, "duplicates removed",
		slog.Int("removed", removed),
		slog.Int("remaining", ds.RowCount()))
	return nil
}
