package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	DataDir      string
	RawDir       string
	ProcessedDir string
	ReportsDir   string
	LogsDir      string

	// Well-known files
	RawDataCSV   string
	CleanDataCSV string
	ReportFile   string
}

// DefaultPaths returns the fixed pipeline paths rooted at the given base
// directory. An empty base means the current working directory.
func DefaultPaths(baseDir string) *Paths {
	if baseDir == "" {
		baseDir = "."
	}

	dataDir := filepath.Join(baseDir, "data")
	rawDir := filepath.Join(dataDir, "raw")
	processedDir := filepath.Join(dataDir, "processed")
	reportsDir := filepath.Join(baseDir, "reports")
	logsDir := filepath.Join(baseDir, "logs")

	return &Paths{
		DataDir:      dataDir,
		RawDir:       rawDir,
		ProcessedDir: processedDir,
		ReportsDir:   reportsDir,
		LogsDir:      logsDir,
		RawDataCSV:   filepath.Join(rawDir, "hr_data_raw.csv"),
		CleanDataCSV: filepath.Join(processedDir, "hr_data_clean.csv"),
		ReportFile:   filepath.Join(reportsDir, "hr_data_processing_report.txt"),
	}
}

// CleanDataExcel returns the xlsx sibling of the clean CSV path: the same
// path with the extension replaced.
func (p *Paths) CleanDataExcel() string {
	return ReplaceExtension(p.CleanDataCSV, ".xlsx")
}

// GetLogPath returns the full path for a log file in the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates all directories the pipeline writes into.
// Each process creates the directories it needs before opening any output.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.ProcessedDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReplaceExtension swaps the extension of path for ext (which must include
// the leading dot). A path without an extension gets ext appended.
func ReplaceExtension(path, ext string) string {
	old := filepath.Ext(path)
	return strings.TrimSuffix(path, old) + ext
}
