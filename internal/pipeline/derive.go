package pipeline

import (
	"context"
	"log/slog"

	apperrors "hrclean/internal/errors"
	"hrclean/internal/stats"
)

// Age group labels and their half-open bins. 50-100 is closed on both ends;
// anything outside 0-100 stays unclassified.
const (
	ageGroupUnder30 = "Under 30"
	ageGroup30to40  = "30-40"
	ageGroup40to50  = "40-50"
	ageGroup50plus  = "50+"
)

// Income category labels assigned against the quartiles of the cleaned
// income column.
const (
	incomeLow      = "Low"
	incomeMedium   = "Medium"
	incomeHigh     = "High"
	incomeVeryHigh = "Very High"
)

// DeriveStage computes new columns from existing ones: an AgeGroup bucket
// from fixed age bins, and an IncomeCategory from the quartile boundaries of
// the current dataset's income column. Quartiles are data-dependent and
// recomputed every run.
type DeriveStage struct {
	logger *slog.Logger
}

// NewDeriveStage creates the feature derivation stage.
func NewDeriveStage(logger *slog.Logger) *DeriveStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeriveStage{logger: logger}
}

func (s *DeriveStage) ID() string   { return StageIDDerive }
func (s *DeriveStage) Name() string { return StageNameDerive }

func (s *DeriveStage) Execute(ctx context.Context, state *State) error {
	s.deriveAgeGroup(ctx, state)
	s.deriveIncomeCategory(ctx, state)
	state.LastStatus = "Derived features created"
	return nil
}

func (s *DeriveStage) deriveAgeGroup(ctx context.Context, state *State) {
	ds := state.Dataset
	ageIdx, ok := ds.ColumnIndex(ColAge)
	if !ok {
		return
	}

	values := make([]string, len(ds.Rows))
	for i := range ds.Rows {
		age, parsed := ds.Float(i, ageIdx)
		if !parsed {
			continue
		}
		values[i] = AgeGroup(age)
	}
	ds.AddColumn(ColAgeGroup, values)

	state.Log.Append("Created AgeGroup categories")
	s.logger.InfoContext(ctx, "age groups derived")
}

// AgeGroup buckets an age into the fixed half-open bins. Ages outside
// 0-100 return the empty string (unclassified).
func AgeGroup(age float64) string {
	switch {
	case age >= 0 && age < 30:
		return ageGroupUnder30
	case age >= 30 && age < 40:
		return ageGroup30to40
	case age >= 40 && age < 50:
		return ageGroup40to50
	case age >= 50 && age <= 100:
		return ageGroup50plus
	default:
		return ""
	}
}

func (s *DeriveStage) deriveIncomeCategory(ctx context.Context, state *State) {
	ds := state.Dataset
	incomeIdx, ok := ds.ColumnIndex(ColMonthlyIncome)
	if !ok {
		return
	}

	observed := ds.NumericColumn(ColMonthlyIncome)
	values := make([]string, len(ds.Rows))

	if len(observed) == 0 {
		shapeErr := apperrors.NewDataShapeError("quartiles undefined, no observed incomes", nil).
			WithContext("column", ColMonthlyIncome)
		s.logger.WarnContext(ctx, "income categories left unclassified",
			slog.String("error", shapeErr.Error()))
	} else {
		q1, q2, q3 := stats.Quartiles(observed)
		for i := range ds.Rows {
			v, parsed := ds.Float(i, incomeIdx)
			if !parsed {
				continue
			}
			values[i] = IncomeCategory(v, q1, q2, q3)
		}
		s.logger.InfoContext(ctx, "income categories derived",
			slog.Float64("q1", q1),
			slog.Float64("q2", q2),
			slog.Float64("q3", q3))
	}

	ds.AddColumn(ColIncomeCategory, values)
	state.Log.Append("Created IncomeCategory based on quartiles")
}

// IncomeCategory buckets an income against quartile boundaries. The bins are
// left-open: an income must be strictly positive to classify, and a value
// equal to a boundary falls in the lower bucket.
func IncomeCategory(income, q1, q2, q3 float64) string {
	switch {
	case income <= 0:
		return ""
	case income <= q1:
		return incomeLow
	case income <= q2:
		return incomeMedium
	case income <= q3:
		return incomeHigh
	default:
		return incomeVeryHigh
	}
}
