// Package dataset holds the in-memory tabular model the pipeline operates
// on: an ordered set of named columns over row-major string records, with an
// empty cell (or a conventional NA token) marking a missing value. Cells stay
// strings end to end; numeric columns are parsed on demand.
package dataset

import (
	"strconv"
	"strings"
)

// Dataset is an ordered sequence of records sharing one column set.
// The column set is fixed after load; stages only append derived columns
// and remove whole rows.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// missingTokens are the cell spellings treated as a missing value,
// compared case-insensitively after trimming.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// IsMissing reports whether a cell holds no usable value.
func IsMissing(cell string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(cell))]
}

// RowCount returns the number of records.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.ColumnIndex(name)
	return ok
}

// Column returns a copy of the named column's cells in row order.
// The second return is false when the column does not exist.
func (d *Dataset) Column(name string) ([]string, bool) {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return nil, false
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// Float parses the cell at (row, col index) as a number.
// Missing or unparseable cells return false.
func (d *Dataset) Float(row, col int) (float64, bool) {
	cell := d.Rows[row][col]
	if IsMissing(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumericColumn returns every parseable, non-missing value of the named
// column in row order.
func (d *Dataset) NumericColumn(name string) []float64 {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return nil
	}
	values := make([]float64, 0, len(d.Rows))
	for i := range d.Rows {
		if v, ok := d.Float(i, idx); ok {
			values = append(values, v)
		}
	}
	return values
}

// MissingCount returns how many cells of the named column are missing.
func (d *Dataset) MissingCount(name string) int {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return 0
	}
	count := 0
	for _, row := range d.Rows {
		if IsMissing(row[idx]) {
			count++
		}
	}
	return count
}

// TotalMissing returns the number of missing cells across the whole dataset.
func (d *Dataset) TotalMissing() int {
	total := 0
	for _, row := range d.Rows {
		for _, cell := range row {
			if IsMissing(cell) {
				total++
			}
		}
	}
	return total
}

// DistinctCount returns the number of distinct non-missing values in the
// named column, or -1 when the column does not exist.
func (d *Dataset) DistinctCount(name string) int {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return -1
	}
	seen := make(map[string]bool)
	for _, row := range d.Rows {
		if !IsMissing(row[idx]) {
			seen[row[idx]] = true
		}
	}
	return len(seen)
}

// ValueCounts returns the occurrence count of each distinct non-missing
// value in the named column, plus the distinct values in order of first
// appearance.
func (d *Dataset) ValueCounts(name string) (map[string]int, []string) {
	idx, ok := d.ColumnIndex(name)
	if !ok {
		return nil, nil
	}
	counts := make(map[string]int)
	var order []string
	for _, row := range d.Rows {
		if IsMissing(row[idx]) {
			continue
		}
		if _, seen := counts[row[idx]]; !seen {
			order = append(order, row[idx])
		}
		counts[row[idx]]++
	}
	return counts, order
}

// AddColumn appends a derived column. values must have one entry per row.
func (d *Dataset) AddColumn(name string, values []string) {
	d.Columns = append(d.Columns, name)
	for i := range d.Rows {
		d.Rows[i] = append(d.Rows[i], values[i])
	}
}

// RowKey returns a key that is identical for exactly duplicate rows.
func (d *Dataset) RowKey(row int) string {
	return strings.Join(d.Rows[row], "\x1f")
}

// DuplicateCount returns how many rows are exact duplicates of an earlier row.
func (d *Dataset) DuplicateCount() int {
	seen := make(map[string]bool, len(d.Rows))
	dupes := 0
	for i := range d.Rows {
		key := d.RowKey(i)
		if seen[key] {
			dupes++
		}
		seen[key] = true
	}
	return dupes
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([][]string, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
