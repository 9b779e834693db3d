// Package linear implements ordinary least squares regression on top of the
// Gaussian-elimination solver in core/linalg.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/liyachittilappilly/stella-linearregression/core/linalg"
	"github.com/liyachittilappilly/stella-linearregression/core/model"
	"github.com/liyachittilappilly/stella-linearregression/core/parallel"
	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// LinearRegression は最小二乗法による線形回帰モデル。
// Fitが成功すると切片・係数・訓練データ上のR²（fitScore）が確定する。
// 再学習は新しいインスタンスで行うこと。公開される係数は常にコピーで、
// 学習済みモデルの内部状態が外から変わることはない。
type LinearRegression struct {
	model.BaseEstimator

	Weights   *mat.VecDense // 係数（特徴量の入力順）
	Intercept float64       // 切片
	NFeatures int           // 特徴量の数

	fitIntercept bool
	fitScore     float64 // 訓練データ上のR²。ターゲットの分散が0の場合はNaN
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		fitIntercept: true,
		fitScore:     math.NaN(),
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit はモデルを訓練データで学習させる。
//
// 特徴量が1つの場合は閉形式の単回帰（slope = cov(x,y)/var(x)）を使い、
// 2つ以上の場合は切片列を加えた計画行列 D から正規方程式
// Dᵗ·D·β = Dᵗ·y を組み立てて core/linalg のソルバで解く。
//
// 失敗の方針: 検出した異常に対してNaNや既定値で誤魔化すことはしない。
// 行が無い・行数が未知数より少ない場合はInsufficientDataError、
// 係数行列が特異な場合はErrSingularSystemを伝播する
// （呼び出し側は共線性またはデータ不足を疑うべき）。
func (lr *LinearRegression) Fit(X mat.Matrix, y *mat.VecDense) (err error) {
	const op = "LinearRegression.Fit"
	defer errors.Recover(&err, op)

	r, c := X.Dims()
	if r == 0 {
		return errors.NewInsufficientDataError(op, 1, 0, "")
	}
	if c == 0 {
		return errors.NewValueError(op, "no feature columns")
	}
	if y.Len() != r {
		return errors.NewDimensionError(op, r, y.Len(), 0)
	}

	unknowns := c
	if lr.fitIntercept {
		unknowns++
	}
	if r < unknowns {
		return errors.NewInsufficientDataError(op, unknowns, r,
			"fewer rows than parameters")
	}

	lr.NFeatures = c

	if c == 1 && lr.fitIntercept {
		err = lr.fitSimple(X, y)
	} else {
		err = lr.fitNormalEquations(X, y)
	}
	if err != nil {
		return err
	}

	lr.fitScore = lr.trainingScore(X, y)
	lr.SetFitted()
	return nil
}

// fitSimple は単回帰の閉形式解。一般のソルバを経由しないぶん速く、
// 数値的にも安定している。
func (lr *LinearRegression) fitSimple(X mat.Matrix, y *mat.VecDense) error {
	n, _ := X.Dims()

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += X.At(i, 0)
		meanY += y.AtVec(i)
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX float64
	for i := 0; i < n; i++ {
		dx := X.At(i, 0) - meanX
		cov += dx * (y.AtVec(i) - meanY)
		varX += dx * dx
	}

	if varX == 0 {
		return errors.Wrap(errors.ErrSingularSystem, "LinearRegression.Fit: feature has zero variance")
	}

	slope := cov / varX
	lr.Intercept = meanY - slope*meanX
	lr.Weights = mat.NewVecDense(1, []float64{slope})
	return nil
}

// fitNormalEquations は正規方程式を組み立ててガウス消去法で解く
func (lr *LinearRegression) fitNormalEquations(X mat.Matrix, y *mat.VecDense) error {
	r, c := X.Dims()

	offset := 0
	if lr.fitIntercept {
		offset = 1
	}
	d := c + offset

	// 計画行列 D = [1 | X]（切片なしの場合は D = X）
	design := mat.NewDense(r, d, nil)

	// 並列処理の閾値（この値以下の行数では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if lr.fitIntercept {
				design.Set(i, 0, 1.0)
			}
			for j := 0; j < c; j++ {
				design.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	// Dᵗ·D と Dᵗ·y を構成する
	var dtd mat.Dense
	dtd.Mul(design.T(), design)

	var dty mat.VecDense
	dty.MulVec(design.T(), y)

	rhs := make([]float64, d)
	for i := 0; i < d; i++ {
		rhs[i] = dty.AtVec(i)
	}

	beta, err := linalg.Solve(&dtd, rhs)
	if err != nil {
		return err
	}

	if lr.fitIntercept {
		lr.Intercept = beta[0]
	} else {
		lr.Intercept = 0
	}
	lr.Weights = mat.NewVecDense(c, beta[offset:])
	return nil
}

// trainingScore は訓練データ上のR²を計算する。
// ターゲットが定数（SStot = 0）の場合、R²は定義できないため
// 紛らわしい数値を返す代わりにNaNとし、UndefinedMetricWarningを発行する。
func (lr *LinearRegression) trainingScore(X mat.Matrix, y *mat.VecDense) float64 {
	n, _ := X.Dims()

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += y.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrue := y.AtVec(i)
		yPred := lr.predictRow(X, i)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPred) * (yTrue - yPred)
	}

	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("r2",
			"zero variance in training target", math.NaN()))
		return math.NaN()
	}

	return 1 - rss/tss
}

func (lr *LinearRegression) predictRow(X mat.Matrix, i int) float64 {
	pred := lr.Intercept
	for j := 0; j < lr.NFeatures; j++ {
		pred += X.At(i, j) * lr.Weights.AtVec(j)
	}
	return pred
}

// Predict は入力データに対する予測を行う。
// 各行について intercept + Σ coefficients[j]·row[j] を計算する純粋関数で、
// モデルの状態を変更しない。
func (lr *LinearRegression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		predictions.SetVec(i, lr.predictRow(X, i))
	}
	return predictions, nil
}

// GetWeights は学習された係数のコピーを返す
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept は学習された切片を返す
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// FitScore は学習時に訓練データ上で計算したR²を返す。
// 未学習の場合、およびターゲットが定数でR²が定義できなかった場合はNaN。
func (lr *LinearRegression) FitScore() float64 {
	if !lr.IsFitted() {
		return math.NaN()
	}
	return lr.fitScore
}

// Score は与えられたデータに対するモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X mat.Matrix, y *mat.VecDense) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	n := y.Len()
	if n != yPred.Len() {
		return 0, errors.NewDimensionError("LinearRegression.Score", yPred.Len(), n, 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += y.AtVec(i)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrue := y.AtVec(i)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPred.AtVec(i)) * (yTrue - yPred.AtVec(i))
	}

	if tss == 0 {
		return 0, errors.Newf("LinearRegression.Score: total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}
