package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	apperrors "hrclean/internal/errors"
)

// LoadCSV reads a delimited source file into a Dataset. The first record is
// the header. Every data record must have exactly as many fields as the
// header; a ragged file is a parsing error, not a partial load.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("cannot open source file %s", path), err)
	}
	defer file.Close()

	return ReadCSV(file, path)
}

// ReadCSV parses CSV content from r. The name is used in error messages only.
func ReadCSV(r io.Reader, name string) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.NewParsingError(fmt.Sprintf("source file %s is empty", name), nil)
	}
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("cannot read header of %s", name), err)
	}

	// csv.Reader enforces a consistent field count against the header row.
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("malformed record in %s", name), err)
	}

	return &Dataset{Columns: header, Rows: rows}, nil
}
