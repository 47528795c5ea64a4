package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Dataset {
	return &Dataset{
		Columns: []string{"Age", "Department", "MonthlyIncome"},
		Rows: [][]string{
			{"34", "Sales", "5000"},
			{"29", "sales", ""},
			{"41", "Human Resources", "6200"},
			{"34", "Sales", "5000"},
		},
	}
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"NA", true},
		{"n/a", true},
		{"NaN", true},
		{"null", true},
		{"0", false},
		{"Sales", false},
		{"nah", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMissing(tt.cell))
		})
	}
}

func TestColumnIndex(t *testing.T) {
	d := sample()

	idx, ok := d.ColumnIndex("Department")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = d.ColumnIndex("JobRole")
	assert.False(t, ok)
}

func TestColumn(t *testing.T) {
	d := sample()

	values, ok := d.Column("Age")
	require.True(t, ok)
	assert.Equal(t, []string{"34", "29", "41", "34"}, values)

	_, ok = d.Column("Missing")
	assert.False(t, ok)
}

func TestNumericColumn_SkipsMissingAndUnparseable(t *testing.T) {
	d := &Dataset{
		Columns: []string{"MonthlyIncome"},
		Rows:    [][]string{{"5000"}, {""}, {"abc"}, {"-120.5"}},
	}

	assert.Equal(t, []float64{5000, -120.5}, d.NumericColumn("MonthlyIncome"))
}

func TestMissingCounts(t *testing.T) {
	d := sample()

	assert.Equal(t, 1, d.MissingCount("MonthlyIncome"))
	assert.Equal(t, 0, d.MissingCount("Age"))
	assert.Equal(t, 1, d.TotalMissing())
}

func TestDistinctCount(t *testing.T) {
	d := sample()

	assert.Equal(t, 3, d.DistinctCount("Department"))
	assert.Equal(t, -1, d.DistinctCount("JobRole"))
}

func TestValueCounts_OrderOfFirstAppearance(t *testing.T) {
	d := sample()

	counts, order := d.ValueCounts("Department")
	assert.Equal(t, []string{"Sales", "sales", "Human Resources"}, order)
	assert.Equal(t, 2, counts["Sales"])
	assert.Equal(t, 1, counts["sales"])
}

func TestDuplicateCount(t *testing.T) {
	d := sample()
	assert.Equal(t, 1, d.DuplicateCount())
}

func TestAddColumn(t *testing.T) {
	d := sample()
	d.AddColumn("AgeGroup", []string{"30-40", "Under 30", "40-50", "30-40"})

	assert.Equal(t, 4, d.ColumnCount())
	values, ok := d.Column("AgeGroup")
	require.True(t, ok)
	assert.Equal(t, "Under 30", values[1])
}

func TestClone_Independent(t *testing.T) {
	d := sample()
	c := d.Clone()
	c.Rows[0][0] = "99"
	c.Columns[0] = "Renamed"

	assert.Equal(t, "34", d.Rows[0][0])
	assert.Equal(t, "Age", d.Columns[0])
}

func TestReadCSV(t *testing.T) {
	in := "Age,Department\n34,Sales\n29,HR\n"

	d, err := ReadCSV(strings.NewReader(in), "test.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "Department"}, d.Columns)
	assert.Equal(t, 2, d.RowCount())
}

func TestReadCSV_RaggedRowFails(t *testing.T) {
	in := "Age,Department\n34,Sales,extra\n"

	_, err := ReadCSV(strings.NewReader(in), "test.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed record")
}

func TestReadCSV_EmptyFileFails(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), "test.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadCSV_MissingFileFails(t *testing.T) {
	_, err := LoadCSV("does/not/exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open source file")
}
