package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"hrclean/internal/config"
	apperrors "hrclean/internal/errors"
	"hrclean/internal/exporter"
)

// PersistStage writes the cleaned dataset to the primary CSV and to the
// xlsx sibling with its CleanData and Summary sheets.
type PersistStage struct {
	logger *slog.Logger
	csv    *exporter.CSVWriter
	excel  *exporter.ExcelWriter
}

// NewPersistStage creates the persistence stage.
func NewPersistStage(logger *slog.Logger, csv *exporter.CSVWriter, excel *exporter.ExcelWriter) *PersistStage {
	if logger == nil {
		logger = slog.Default()
	}
	if csv == nil {
		csv = exporter.NewCSVWriter(logger)
	}
	if excel == nil {
		excel = exporter.NewExcelWriter(logger)
	}
	return &PersistStage{logger: logger, csv: csv, excel: excel}
}

func (s *PersistStage) ID() string   { return StageIDPersist }
func (s *PersistStage) Name() string { return StageNamePersist }

func (s *PersistStage) Execute(ctx context.Context, state *State) error {
	ds := state.Dataset

	if err := s.csv.WriteCSV(state.OutputPath, ds.Columns, ds.Rows); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("cannot write clean CSV %s", state.OutputPath), err)
	}
	state.Log.Appendf("Cleaned data saved to %s", state.OutputPath)

	excelPath := config.ReplaceExtension(state.OutputPath, ".xlsx")
	if err := s.excel.WriteWorkbook(excelPath, ds); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("cannot write workbook %s", excelPath), err)
	}

	state.LastStatus = fmt.Sprintf("Saved clean data (%d rows) to CSV and Excel", ds.RowCount())
	s.logger.InfoContext(ctx, "clean data persisted",
		slog.String("csv", state.OutputPath),
		slog.String("xlsx", excelPath),
		slog.Int("rows", ds.RowCount()))
	return nil
}
