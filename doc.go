// Package stella provides the numeric modeling core behind a tabular
// linear-regression explorer: dataset value utilities, deterministic
// train/test splitting, ordinary least squares fitting, and evaluation
// metrics.
//
// The core is UI-agnostic. Ingestion (CSV parsing), configuration, and
// presentation are external collaborators: they hand the core a dataset
// plus column selections, and consume plain result values back.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/liyachittilappilly/stella-linearregression/dataset"
//	    "github.com/liyachittilappilly/stella-linearregression/linear"
//	    "github.com/liyachittilappilly/stella-linearregression/metrics"
//	    "github.com/liyachittilappilly/stella-linearregression/model_selection"
//	)
//
//	func main() {
//	    ds := dataset.FromRecords([]map[string]any{
//	        {"sqft": 50.0, "rooms": 2.0, "price": 120.0},
//	        {"sqft": 80.0, "rooms": 3.0, "price": 200.0},
//	        // ...
//	    })
//
//	    X, y, err := dataset.Features(ds, []string{"sqft", "rooms"}, "price")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    split, err := model_selection.TrainTestSplit(X, y,
//	        model_selection.WithTestSize(0.25),
//	        model_selection.WithSeed(42),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    lr := linear.NewLinearRegression()
//	    if err := lr.Fit(split.XTrain, split.YTrain); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    yPred, _ := lr.Predict(split.XTest)
//	    report, _ := metrics.EvaluateRegression(split.YTest, yPred)
//	    fmt.Printf("r2=%.4f mse=%.4f mae=%.4f\n", report.R2, report.MSE, report.MAE)
//	}
//
// # Packages
//
//   - dataset: tagged scalar values, unique values / value counts /
//     replacement maps, feature extraction, summary statistics
//   - model_selection: deterministic train/test splitting
//   - linear: ordinary least squares regression
//   - metrics: regression evaluation (R², MSE, MAE)
//   - core/linalg: Gaussian elimination with partial pivoting
//   - core/model, core/parallel: shared estimator plumbing
//   - pkg/errors, pkg/log: structured errors, warnings, and logging
//
// # Determinism
//
// Splitting with a seed uses a locally scoped pseudo-random generator, so
// the same seed, data, and fraction reproduce the exact same partition
// across runs and across independently constructed calls. No process-wide
// random source is touched.
package stella
