package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{1, 2, 3}),
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "all-zero prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{0, 0, 0}),
			want:      14.0 / 3.0, // (1 + 4 + 9) / 3
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "dimension mismatch",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(2, []float64{1, 2}),
			wantErr:   true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
				}
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{0, 0, 0, 0})
	yPred := mat.NewVecDense(4, []float64{1, 1, 1, 1})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-10 {
		t.Errorf("RMSE() = %v, want 1.0", got)
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{1, 2, 3}),
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "all-zero prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{0, 0, 0}),
			want:      2.0, // (1 + 2 + 3) / 3
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "with negative differences",
			yTrue:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred:     mat.NewVecDense(4, []float64{2, 1, 4, 3}),
			want:      1.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MAE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MAE() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:     mat.NewVecDense(3, []float64{1, 2, 3}),
			want:      1.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:    "no variance in yTrue",
			yTrue:   mat.NewVecDense(4, []float64{3, 3, 3, 3}),
			yPred:   mat.NewVecDense(4, []float64{2, 3, 4, 3}),
			wantErr: true, // R² undefined when total variation is 0
		},
		{
			name:      "worse than mean baseline",
			yTrue:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred:     mat.NewVecDense(4, []float64{4, 3, 2, 1}),
			want:      -3.0,
			tolerance: 0.01,
			wantErr:   false,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("R2Score() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("R2Score() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEvaluateRegression(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(3, []float64{0, 0, 0})

	report, err := EvaluateRegression(yTrue, yPred)
	if err != nil {
		t.Fatalf("EvaluateRegression() error = %v", err)
	}

	if math.Abs(report.MSE-14.0/3.0) > 1e-10 {
		t.Errorf("MSE = %v, want %v", report.MSE, 14.0/3.0)
	}
	if math.Abs(report.MAE-2.0) > 1e-10 {
		t.Errorf("MAE = %v, want 2.0", report.MAE)
	}
	// SSres = 14, SStot = 2 for mean 2: R² = 1 - 7 = -6
	if math.Abs(report.R2-(-6.0)) > 1e-10 {
		t.Errorf("R2 = %v, want -6.0", report.R2)
	}
}

func TestEvaluateRegressionEmptyInput(t *testing.T) {
	_, err := EvaluateRegression(&mat.VecDense{}, &mat.VecDense{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

// Benchmark tests
func BenchmarkMSE(b *testing.B) {
	size := 10000
	yTrue := mat.NewVecDense(size, nil)
	yPred := mat.NewVecDense(size, nil)

	for i := 0; i < size; i++ {
		yTrue.SetVec(i, float64(i))
		yPred.SetVec(i, float64(i)+0.1*float64(i%10))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MSE(yTrue, yPred)
	}
}
