package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "hrclean/internal/errors"
	"hrclean/internal/report"
)

// ReportStage writes the text report summarizing the whole run, including
// the verbatim processing log.
type ReportStage struct {
	logger *slog.Logger
	writer *report.Writer
}

// NewReportStage creates the report generation stage.
func NewReportStage(logger *slog.Logger, writer *report.Writer) *ReportStage {
	if logger == nil {
		logger = slog.Default()
	}
	if writer == nil {
		writer = report.NewWriter(logger)
	}
	return &ReportStage{logger: logger, writer: writer}
}

func (s *ReportStage) ID() string   { return StageIDReport }
func (s *ReportStage) Name() string { return StageNameReport }

func (s *ReportStage) Execute(ctx context.Context, state *State) error {
	data := report.Data{
		RunID:        state.RunID,
		StartTime:    state.StartTime,
		Elapsed:      state.Elapsed(),
		InputPath:    state.InputPath,
		OutputPath:   state.OutputPath,
		OriginalRows: state.OriginalRows,
		OriginalCols: state.OriginalCols,
		Dataset:      state.Dataset,
		LogEntries:   state.Log.Entries(),
	}

	if err := s.writer.Write(state.ReportPath, data); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("cannot write report %s", state.ReportPath), err)
	}

	state.LastStatus = fmt.Sprintf("Comprehensive report saved to %s", state.ReportPath)
	s.logger.InfoContext(ctx, "processing report written",
		slog.String("report", state.ReportPath),
		slog.Float64("elapsed_seconds", data.Elapsed.Seconds()))
	return nil
}
