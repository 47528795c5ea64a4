package pipeline

import (
	"context"
	"log/slog"
	"strconv"

	"hrclean/internal/dataset"
	apperrors "hrclean/internal/errors"
	"hrclean/internal/stats"
)

// ImputeStage fills missing values with business-specific rules:
// MonthlyIncome from the median income of the same job role, and
// JobSatisfaction from the most frequent value across the dataset. A rule is
// skipped silently when its column is absent. A job role group with no
// observed income at all keeps its cells missing; that is a data-shape
// condition, logged and never fatal.
type ImputeStage struct {
	logger *slog.Logger
}

// NewImputeStage creates the imputation stage.
func NewImputeStage(logger *slog.Logger) *ImputeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImputeStage{logger: logger}
}

func (s *ImputeStage) ID() string   { return StageIDImpute }
func (s *ImputeStage) Name() string { return StageNameImpute }

func (s *ImputeStage) Execute(ctx context.Context, state *State) error {
	s.fillIncome(ctx, state)
	s.fillSatisfaction(ctx, state)
	state.LastStatus = "Missing values handled using business logic"
	return nil
}

// fillIncome fills missing MonthlyIncome cells with the median income of the
// row's job role. Without a JobRole column the whole column's median is used
// instead.
func (s *ImputeStage) fillIncome(ctx context.Context, state *State) {
	ds := state.Dataset
	incomeIdx, ok := ds.ColumnIndex(ColMonthlyIncome)
	if !ok {
		return
	}
	missing := ds.MissingCount(ColMonthlyIncome)
	if missing == 0 {
		return
	}

	roleIdx, grouped := ds.ColumnIndex(ColJobRole)

	// Collect observed incomes per group. Without a grouping column every
	// row lands in the one overall group.
	groups := make(map[string][]float64)
	for i := range ds.Rows {
		v, ok := ds.Float(i, incomeIdx)
		if !ok {
			continue
		}
		key := groupKey(ds, i, roleIdx, grouped)
		groups[key] = append(groups[key], v)
	}

	filled := 0
	for i := range ds.Rows {
		if !dataset.IsMissing(ds.Rows[i][incomeIdx]) {
			continue
		}
		key := groupKey(ds, i, roleIdx, grouped)
		observed := groups[key]
		if len(observed) == 0 {
			shapeErr := apperrors.NewDataShapeError("median undefined for group", nil).
				WithContext("column", ColMonthlyIncome).
				WithContext("group", key)
			s.logger.WarnContext(ctx, "income left missing",
				slog.String("job_role", key),
				slog.String("error", shapeErr.Error()))
			continue
		}
		ds.Rows[i][incomeIdx] = strconv.FormatFloat(stats.Median(observed), 'f', -1, 64)
		filled++
	}

	if filled > 0 {
		strategy := "job role median"
		if !grouped {
			strategy = "overall median"
		}
		state.Log.Appendf("Filled %d missing MonthlyIncome values using %s", filled, strategy)
		s.logger.InfoContext(ctx, "income imputed",
			slog.Int("filled", filled),
			slog.String("strategy", strategy))
	}
}

// fillSatisfaction fills missing JobSatisfaction cells with the mode of the
// column. Ties break toward the value whose first occurrence appears
// earliest in row order.
func (s *ImputeStage) fillSatisfaction(ctx context.Context, state *State) {
	ds := state.Dataset
	satIdx, ok := ds.ColumnIndex(ColJobSatisfaction)
	if !ok {
		return
	}
	missing := ds.MissingCount(ColJobSatisfaction)
	if missing == 0 {
		return
	}

	counts, order := ds.ValueCounts(ColJobSatisfaction)
	if len(order) == 0 {
		shapeErr := apperrors.NewDataShapeError("mode undefined, no observed values", nil).
			WithContext("column", ColJobSatisfaction)
		s.logger.WarnContext(ctx, "satisfaction left missing",
			slog.String("error", shapeErr.Error()))
		return
	}

	mode := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[mode] {
			mode = v
		}
	}

	filled := 0
	for i := range ds.Rows {
		if dataset.IsMissing(ds.Rows[i][satIdx]) {
			ds.Rows[i][satIdx] = mode
			filled++
		}
	}

	state.Log.Appendf("Filled %d missing JobSatisfaction values with mode (%s)", filled, mode)
	s.logger.InfoContext(ctx, "satisfaction imputed",
		slog.Int("filled", filled),
		slog.String("mode", mode))
}

func groupKey(ds *dataset.Dataset, row, roleIdx int, grouped bool) string {
	if !grouped {
		return ""
	}
	return ds.Rows[row][roleIdx]
}
