package pipeline

import (
	"context"
	"log/slog"
	"strconv"

	"hrclean/internal/dataset"
)

// departmentMapping collapses the case and spacing variants seen in raw
// exports to one canonical label. Values outside the table pass through
// unchanged.
var departmentMapping = map[string]string{
	"SALES":                  "Sales",
	"sales":                  "Sales",
	"RESEARCH & DEVELOPMENT": "Research & Development",
	"research & development": "Research & Development",
	"HUMAN RESOURCES":        "Human Resources",
	"human resources":        "Human Resources",
}

// genderMapping normalizes single-letter gender codes.
var genderMapping = map[string]string{
	"M": "Male",
	"m": "Male",
	"F": "Female",
	"f": "Female",
}

// StandardizeStage normalizes categorical values and fixes sign errors:
// department labels to canonical form, gender codes to full words, and
// negative incomes to their absolute value.
type StandardizeStage struct {
	logger *slog.Logger
}

// NewStandardizeStage creates the standardization stage.
func NewStandardizeStage(logger *slog.Logger) *StandardizeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &StandardizeStage{logger: logger}
}

func (s *StandardizeStage) ID() string   { return StageIDStandardize }
func (s *StandardizeStage) Name() string { return StageNameStandardize }

func (s *StandardizeStage) Execute(ctx context.Context, state *State) error {
	ds := state.Dataset

	if replaced := applyMapping(ds, ColDepartment, departmentMapping); replaced >= 0 {
		state.Log.Append("Standardized Department names")
		s.logger.InfoContext(ctx, "department names standardized",
			slog.Int("replaced", replaced))
	}

	if replaced := applyMapping(ds, ColGender, genderMapping); replaced >= 0 {
		state.Log.Append("Standardized Gender values")
		s.logger.InfoContext(ctx, "gender values standardized",
			slog.Int("replaced", replaced))
	}

	s.fixNegativeIncomes(ctx, state)

	state.LastStatus = "Data formats standardized"
	return nil
}

// applyMapping rewrites every cell of the named column that has an entry in
// mapping. It returns the number of replaced cells, or -1 when the column
// does not exist.
func applyMapping(ds *dataset.Dataset, column string, mapping map[string]string) int {
	idx, ok := ds.ColumnIndex(column)
	if !ok {
		return -1
	}
	replaced := 0
	for i := range ds.Rows {
		if canonical, ok := mapping[ds.Rows[i][idx]]; ok {
			ds.Rows[i][idx] = canonical
			replaced++
		}
	}
	return replaced
}

// fixNegativeIncomes replaces negative incomes with their absolute value.
func (s *StandardizeStage) fixNegativeIncomes(ctx context.Context, state *State) {
	ds := state.Dataset
	idx, ok := ds.ColumnIndex(ColMonthlyIncome)
	if !ok {
		return
	}

	fixed := 0
	for i := range ds.Rows {
		v, parsed := ds.Float(i, idx)
		if !parsed || v >= 0 {
			continue
		}
		ds.Rows[i][idx] = strconv.FormatFloat(-v, 'f', -1, 64)
		fixed++
	}

	if fixed > 0 {
		state.Log.Appendf("Fixed %d negative income values", fixed)
		s.logger.InfoContext(ctx, "negative incomes corrected",
			slog.Int("fixed", fixed))
	}
}
