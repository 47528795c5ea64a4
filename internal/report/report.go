// Package report renders the human-readable processing report for one
// pipeline run: shape changes, the full processing log, distributions,
// salary statistics and efficiency metrics.
package report

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"hrclean/internal/dataset"
	"hrclean/internal/exporter"
	"hrclean/internal/stats"
)

// manualBaselineSeconds is the assumed duration of the equivalent manual
// cleanup. It is a documented constant for the efficiency section, not a
// measured quantity.
const manualBaselineSeconds = 2 * 3600

// Data carries everything the report needs from a finished run.
type Data struct {
	RunID        string
	StartTime    time.Time
	Elapsed      time.Duration
	InputPath    string
	OutputPath   string
	OriginalRows int
	OriginalCols int
	Dataset      *dataset.Dataset
	LogEntries   []string
}

// Writer renders and persists processing reports.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a report writer.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// Write renders the report and writes it to filePath, creating the parent
// directory as needed.
func (w *Writer) Write(filePath string, d Data) error {
	w.logger.Info("writing processing report",
		slog.String("file_path", filePath))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(Render(d)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Render produces the full report text.
func Render(d Data) string {
	var b strings.Builder

	b.WriteString("HR DATA PROCESSING AUTOMATION REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "Processing Date: %s\n", d.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Processing Time: %.2f seconds\n", d.Elapsed.Seconds())
	fmt.Fprintf(&b, "Run ID: %s\n", d.RunID)
	fmt.Fprintf(&b, "Input File: %s\n", d.InputPath)
	fmt.Fprintf(&b, "Output File: %s\n\n", d.OutputPath)

	writeTransformationSummary(&b, d)
	writeProcessingSteps(&b, d)
	writeDepartmentDistribution(&b, d.Dataset)
	writeSalaryStatistics(&b, d.Dataset)
	writeEfficiencyMetrics(&b, d)

	return b.String()
}

func sectionHeader(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}

func writeTransformationSummary(b *strings.Builder, d Data) {
	finalRows := d.Dataset.RowCount()
	finalCols := d.Dataset.ColumnCount()

	sectionHeader(b, "DATA TRANSFORMATION SUMMARY:")
	fmt.Fprintf(b, "Original Shape: %d rows x %d columns\n", d.OriginalRows, d.OriginalCols)
	fmt.Fprintf(b, "Final Shape: %d rows x %d columns\n", finalRows, finalCols)
	fmt.Fprintf(b, "Rows Processed: %d\n", d.OriginalRows)
	fmt.Fprintf(b, "Rows Retained: %d\n", finalRows)
	fmt.Fprintf(b, "Data Quality Improvement: %.1f%% clean data retention\n\n", Retention(finalRows, d.OriginalRows))
}

func writeProcessingSteps(b *strings.Builder, d Data) {
	sectionHeader(b, "PROCESSING STEPS COMPLETED:")
	for i, step := range d.LogEntries {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")
}

func writeDepartmentDistribution(b *strings.Builder, ds *dataset.Dataset) {
	counts, order := ds.ValueCounts("Department")
	if counts == nil {
		return
	}

	// Largest department first; ties keep first-appearance order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	sectionHeader(b, "DEPARTMENT DISTRIBUTION:")
	total := ds.RowCount()
	for _, dept := range order {
		count := counts[dept]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(b, "- %s: %d employees (%.1f%%)\n", dept, count, pct)
	}
	b.WriteString("\n")
}

func writeSalaryStatistics(b *strings.Builder, ds *dataset.Dataset) {
	if !ds.HasColumn("MonthlyIncome") {
		return
	}
	incomes := ds.NumericColumn("MonthlyIncome")
	if len(incomes) == 0 {
		return
	}

	sectionHeader(b, "SALARY STATISTICS:")
	fmt.Fprintf(b, "- Average Salary: %s\n", exporter.Currency(stats.Mean(incomes), 2))
	fmt.Fprintf(b, "- Median Salary: %s\n", exporter.Currency(stats.Median(incomes), 2))
	fmt.Fprintf(b, "- Salary Range: %s - %s\n",
		exporter.Currency(stats.Min(incomes), 2), exporter.Currency(stats.Max(incomes), 2))

	if std := stats.StdDev(incomes); !math.IsNaN(std) {
		fmt.Fprintf(b, "- Standard Deviation: %s\n", exporter.Currency(std, 2))
	}
	b.WriteString("\n")
}

func writeEfficiencyMetrics(b *strings.Builder, d Data) {
	secs := d.Elapsed.Seconds()

	sectionHeader(b, "EFFICIENCY METRICS:")
	if secs > 0 {
		fmt.Fprintf(b, "- Processing Speed: %.0f records/second\n", float64(d.OriginalRows)/secs)
		fmt.Fprintf(b, "- Time Savings vs Manual: ~%.1f hours saved\n", (manualBaselineSeconds-secs)/3600)
		fmt.Fprintf(b, "- Estimated Manual Time: ~2 hours\n")
		fmt.Fprintf(b, "- Automated Time: %.1f seconds\n", secs)
		fmt.Fprintf(b, "- Efficiency Gain: %.0fx faster\n", manualBaselineSeconds/secs)
	} else {
		fmt.Fprintf(b, "- Estimated Manual Time: ~2 hours\n")
		fmt.Fprintf(b, "- Automated Time: under a second\n")
	}
}

// Retention returns the percentage (0-100) of original rows that survived
// cleaning.
func Retention(finalRows, originalRows int) float64 {
	if originalRows == 0 {
		return 0
	}
	return float64(finalRows) / float64(originalRows) * 100
}
