package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"hrclean/internal/dataset"
	"hrclean/internal/stats"
)

// Sheet names of the cleaned workbook
const (
	SheetCleanData = "CleanData"
	SheetSummary   = "Summary"
)

// notApplicable marks a summary metric whose source column is absent.
const notApplicable = "N/A"

// SummaryRow is one metric/value pair of the workbook's Summary sheet.
type SummaryRow struct {
	Metric string
	Value  string
}

// ExcelWriter writes the cleaned dataset workbook: a CleanData sheet with
// the full dataset and a six-row Summary sheet.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// BuildSummary derives the six summary metrics from the cleaned dataset.
// Metrics whose source column is absent render as N/A instead of failing.
func BuildSummary(ds *dataset.Dataset) []SummaryRow {
	departments := notApplicable
	if n := ds.DistinctCount("Department"); n >= 0 {
		departments = strconv.Itoa(n)
	}

	jobRoles := notApplicable
	if n := ds.DistinctCount("JobRole"); n >= 0 {
		jobRoles = strconv.Itoa(n)
	}

	avgAge := notApplicable
	if ds.HasColumn("Age") {
		if ages := ds.NumericColumn("Age"); len(ages) > 0 {
			avgAge = fmt.Sprintf("%.1f", stats.Mean(ages))
		}
	}

	avgIncome := notApplicable
	if ds.HasColumn("MonthlyIncome") {
		if incomes := ds.NumericColumn("MonthlyIncome"); len(incomes) > 0 {
			avgIncome = Currency(stats.Mean(incomes), 0)
		}
	}

	return []SummaryRow{
		{Metric: "Total Records", Value: strconv.Itoa(ds.RowCount())},
		{Metric: "Total Columns", Value: strconv.Itoa(ds.ColumnCount())},
		{Metric: "Departments", Value: departments},
		{Metric: "Job Roles", Value: jobRoles},
		{Metric: "Avg Age", Value: avgAge},
		{Metric: "Avg Monthly Income", Value: avgIncome},
	}
}

// WriteWorkbook writes the CleanData and Summary sheets to filePath.
func (w *ExcelWriter) WriteWorkbook(filePath string, ds *dataset.Dataset) error {
	w.logger.Info("writing Excel workbook",
		slog.String("file_path", filePath),
		slog.Int("record_count", ds.RowCount()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCleanData); err != nil {
		return fmt.Errorf("failed to name clean data sheet: %w", err)
	}
	if err := writeSheetRow(f, SheetCleanData, 1, ds.Columns); err != nil {
		return err
	}
	for i, row := range ds.Rows {
		if err := writeSheetRow(f, SheetCleanData, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSheetRow(f, SheetSummary, 1, []string{"Metric", "Value"}); err != nil {
		return err
	}
	for i, row := range BuildSummary(ds) {
		if err := writeSheetRow(f, SheetSummary, i+2, []string{row.Metric, row.Value}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSheetRow writes cells starting at column A of the given 1-based row.
func writeSheetRow(f *excelize.File, sheet string, row int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
