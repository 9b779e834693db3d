// Package log defines standard attribute keys for modeling operations.
//
// Using these keys consistently keeps log output filterable across the
// dataset, splitting, training and evaluation stages.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LinearRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "split", "score", "replace"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "linear", "metrics", "model_selection"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"

	// DroppedRowsKey counts rows dropped because their target value could
	// not be interpreted as a number.
	DroppedRowsKey = "data.dropped_rows"

	// CoercedCellsKey counts feature cells coerced to zero during extraction.
	CoercedCellsKey = "data.coerced_cells"
)

// Split and evaluation context.
const (
	// TestFractionKey records the requested test fraction of a split.
	TestFractionKey = "split.test_fraction"

	// SeedKey records the seed driving a deterministic split.
	SeedKey = "split.seed"

	// R2Key records a coefficient of determination.
	R2Key = "metrics.r2"

	// MSEKey records a mean squared error.
	MSEKey = "metrics.mse"

	// MAEKey records a mean absolute error.
	MAEKey = "metrics.mae"
)
