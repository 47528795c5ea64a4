// Command processor runs the full HR data cleaning pipeline against the
// fixed input and output paths, printing a progress line per stage and a
// completion banner listing the generated artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"hrclean/internal/config"
	"hrclean/internal/infrastructure"
	"hrclean/internal/pipeline"
)

func main() {
	base := flag.String("base", "", "base directory holding data/, reports/ and logs/ (defaults to the current directory)")
	flag.Parse()

	cfg := config.Default(*base)
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	runID := uuid.NewString()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	logger.InfoContext(ctx, "starting HR data processing",
		slog.String("input", cfg.Paths.RawDataCSV),
		slog.String("output", cfg.Paths.CleanDataCSV))

	fmt.Println("Starting HR Data Processing Automation...")
	fmt.Println(strings.Repeat("-", 50))

	state := pipeline.NewState(runID, cfg.Paths.RawDataCSV, cfg.Paths.CleanDataCSV, cfg.Paths.ReportFile)
	p := pipeline.New(logger, pipeline.NewConsoleObserver(os.Stdout), pipeline.DefaultStages(logger)...)

	if err := p.Run(ctx, state); err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Processing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("HR Data Processing Complete!")
	fmt.Println()
	fmt.Println("Outputs generated:")
	fmt.Printf("- Clean CSV: %s\n", cfg.Paths.CleanDataCSV)
	fmt.Printf("- Excel file: %s\n", cfg.Paths.CleanDataExcel())
	fmt.Printf("- Processing report: %s\n", cfg.Paths.ReportFile)
}
