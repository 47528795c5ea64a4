package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hrclean/internal/dataset"
)

func cleanFixture() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Age", "Department", "JobRole", "MonthlyIncome"},
		Rows: [][]string{
			{"34", "Sales", "Sales Executive", "5000"},
			{"29", "Sales", "Sales Executive", "4000"},
			{"41", "Human Resources", "HR Manager", "6200"},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	rows := BuildSummary(cleanFixture())
	require.Len(t, rows, 6)

	assert.Equal(t, SummaryRow{Metric: "Total Records", Value: "3"}, rows[0])
	assert.Equal(t, SummaryRow{Metric: "Total Columns", Value: "4"}, rows[1])
	assert.Equal(t, SummaryRow{Metric: "Departments", Value: "2"}, rows[2])
	assert.Equal(t, SummaryRow{Metric: "Job Roles", Value: "2"}, rows[3])
	assert.Equal(t, SummaryRow{Metric: "Avg Age", Value: "34.7"}, rows[4])
	assert.Equal(t, SummaryRow{Metric: "Avg Monthly Income", Value: "$5,067"}, rows[5])
}

func TestBuildSummary_MissingColumnsRenderNA(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"EmployeeID"},
		Rows:    [][]string{{"1"}, {"2"}},
	}

	rows := BuildSummary(ds)
	require.Len(t, rows, 6)
	assert.Equal(t, "N/A", rows[2].Value)
	assert.Equal(t, "N/A", rows[3].Value)
	assert.Equal(t, "N/A", rows[4].Value)
	assert.Equal(t, "N/A", rows[5].Value)
}

func TestExcelWriter_WriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed", "clean.xlsx")
	w := NewExcelWriter(nil)

	require.NoError(t, w.WriteWorkbook(path, cleanFixture()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetCleanData, SheetSummary}, f.GetSheetList())

	cleanRows, err := f.GetRows(SheetCleanData)
	require.NoError(t, err)
	require.Len(t, cleanRows, 4)
	assert.Equal(t, []string{"Age", "Department", "JobRole", "MonthlyIncome"}, cleanRows[0])
	assert.Equal(t, []string{"34", "Sales", "Sales Executive", "5000"}, cleanRows[1])

	summaryRows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summaryRows, 7)
	assert.Equal(t, []string{"Metric", "Value"}, summaryRows[0])
	assert.Equal(t, []string{"Total Records", "3"}, summaryRows[1])
	assert.Equal(t, []string{"Avg Monthly Income", "$5,067"}, summaryRows[6])
}
