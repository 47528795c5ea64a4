package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"hrclean/internal/dataset"
)

// LoadStage reads the raw source file into the run state and records the
// original shape.
type LoadStage struct {
	logger *slog.Logger
}

// NewLoadStage creates the load stage.
func NewLoadStage(logger *slog.Logger) *LoadStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStage{logger: logger}
}

func (s *LoadStage) ID() string   { return StageIDLoad }
func (s *LoadStage) Name() string { return StageNameLoad }

func (s *LoadStage) Execute(ctx context.Context, state *State) error {
	ds, err := dataset.LoadCSV(state.InputPath)
	if err != nil {
		return err
	}

	state.Dataset = ds
	state.OriginalRows = ds.RowCount()
	state.OriginalCols = ds.ColumnCount()

	state.Log.Appendf("Loaded data: %d rows, %d columns", ds.RowCount(), ds.ColumnCount())
	state.LastStatus = fmt.Sprintf("Loaded %d employee records", ds.RowCount())

	s.logger.InfoContext(ctx, "raw data loaded",
		slog.String("input", state.InputPath),
		slog.Int("rows", ds.RowCount()),
		slog.Int("columns", ds.ColumnCount()))
	return nil
}
