package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed", "clean.csv")
	w := NewCSVWriter(nil)

	err := w.WriteCSV(path,
		[]string{"Age", "Department"},
		[][]string{{"34", "Sales"}, {"29", "Research & Development"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Age,Department\n34,Sales\n29,Research & Development\n", string(data))
}

func TestCSVWriter_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	w := NewCSVWriter(nil)

	require.NoError(t, w.WriteCSV(path, []string{"A"}, [][]string{{"1"}, {"2"}}))
	require.NoError(t, w.WriteCSV(path, []string{"A"}, [][]string{{"3"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\n3\n", string(data))
}

func TestCSVWriter_QuotesCellsWithCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")
	w := NewCSVWriter(nil)

	require.NoError(t, w.WriteCSV(path, []string{"Note"}, [][]string{{"a, b"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Note\n\"a, b\"\n", string(data))
}
