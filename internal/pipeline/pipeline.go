// Package pipeline implements the sequential HR data cleaning pipeline:
// load, assess, deduplicate, impute, standardize, derive, persist, report.
// Each stage fully completes before the next begins and every transformation
// is recorded in an append-only processing log.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// Pipeline runs an ordered list of stages against one shared run state.
type Pipeline struct {
	logger   *slog.Logger
	observer Observer
	stages   []Stage
}

// New creates a pipeline over the given stages, executed in order.
func New(logger *slog.Logger, observer Observer, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Pipeline{
		logger:   logger,
		observer: observer,
		stages:   stages,
	}
}

// DefaultStages returns the standard eight-stage cleaning pipeline in its
// fixed execution order.
func DefaultStages(logger *slog.Logger) []Stage {
	return []Stage{
		NewLoadStage(logger),
		NewAssessStage(logger),
		NewDedupeStage(logger),
		NewImputeStage(logger),
		NewStandardizeStage(logger),
		NewDeriveStage(logger),
		NewPersistStage(logger, nil, nil),
		NewReportStage(logger, nil),
	}
}

// Stages returns the pipeline's stages in execution order.
func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Run executes every stage in order. The first stage error aborts the run;
// partially written outputs are left in place.
func (p *Pipeline) Run(ctx context.Context, state *State) error {
	for _, stage := range p.stages {
		p.observer.OnStageStart(stage)
		p.logger.InfoContext(ctx, "stage starting",
			slog.String("stage_id", stage.ID()),
			slog.String("stage_name", stage.Name()))

		if err := stage.Execute(ctx, state); err != nil {
			p.logger.ErrorContext(ctx, "stage failed",
				slog.String("stage_id", stage.ID()),
				slog.String("error", err.Error()))
			return fmt.Errorf("stage %s: %w", stage.ID(), err)
		}

		p.logger.InfoContext(ctx, "stage complete",
			slog.String("stage_id", stage.ID()),
			slog.Int("rows", state.Dataset.RowCount()),
			slog.Int("columns", state.Dataset.ColumnCount()))
		p.observer.OnStageComplete(stage, state)
	}
	return nil
}
