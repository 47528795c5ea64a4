package pipeline

import (
	"context"
)

// Stage identifiers
const (
	StageIDLoad        = "load"
	StageIDAssess      = "assess"
	StageIDDedupe      = "dedupe"
	StageIDImpute      = "impute"
	StageIDStandardize = "standardize"
	StageIDDerive      = "derive"
	StageIDPersist     = "persist"
	StageIDReport      = "report"
)

// Stage names
const (
	StageNameLoad        = "Data Loading"
	StageNameAssess      = "Quality Assessment"
	StageNameDedupe      = "Duplicate Removal"
	StageNameImpute      = "Missing Value Imputation"
	StageNameStandardize = "Value Standardization"
	StageNameDerive      = "Feature Derivation"
	StageNamePersist     = "Data Persistence"
	StageNameReport      = "Report Generation"
)

// Well-known column names of the employee dataset. A stage that needs a
// column the source file lacks degrades to a no-op for that column.
const (
	ColAge             = "Age"
	ColAgeGroup        = "AgeGroup"
	ColDepartment      = "Department"
	ColGender          = "Gender"
	ColIncomeCategory  = "IncomeCategory"
	ColJobRole         = "JobRole"
	ColJobSatisfaction = "JobSatisfaction"
	ColMonthlyIncome   = "MonthlyIncome"
)

// Stage is one discrete, ordered transformation step. Execute mutates the
// shared state in place and appends to the processing log; it never runs
// concurrently with another stage.
type Stage interface {
	// ID returns the unique identifier for this stage
	ID() string

	// Name returns the human-readable name for this stage
	Name() string

	// Execute runs the stage against the shared run state
	Execute(ctx context.Context, state *State) error
}
