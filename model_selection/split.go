// Package model_selection provides dataset partitioning utilities for
// model training and evaluation.
package model_selection

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// Split は train/test に分割された特徴量行列とターゲットベクトル。
// TrainIndices と TestIndices は元の行番号を保持する（重複なし・欠落なし）。
// 片側の行数が0の場合、対応する行列・ベクトルはnilになる。
type Split struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain *mat.VecDense
	YTest  *mat.VecDense

	TrainIndices []int
	TestIndices  []int
}

type splitConfig struct {
	testSize float64
	seed     int64
	hasSeed  bool
	shuffle  bool
}

// Option はTrainTestSplitの設定オプション
type Option func(*splitConfig)

// WithTestSize はテストに回す割合を設定する（デフォルト: 0.25、開区間(0,1)）
func WithTestSize(f float64) Option {
	return func(c *splitConfig) {
		c.testSize = f
	}
}

// WithSeed は分割を決定的にするシードを設定する。
// 同じシード・同じデータ・同じ割合なら毎回同じ分割になる。
func WithSeed(seed int64) Option {
	return func(c *splitConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithShuffle は分割前のシャッフルの有無を設定する（デフォルト: true）
func WithShuffle(shuffle bool) Option {
	return func(c *splitConfig) {
		c.shuffle = shuffle
	}
}

// TrainTestSplit は (X, y) を訓練用とテスト用に分割する。
//
// 並べ替えはローカルに生成した乱数源によるFisher–Yatesシャッフルで行う。
// プロセス全体の乱数源には一切触れないため、並行あるいは繰り返しの呼び出しが
// 互いの決定性を壊すことはない。
//
// testCount = floor(n × testSize)。残りが訓練用になる。
// testCountが0になるのはエラーではない（呼び出し側で退化分割に備えること）。
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, opts ...Option) (*Split, error) {
	const op = "model_selection.TrainTestSplit"

	cfg := &splitConfig{
		testSize: 0.25,
		shuffle:  true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.testSize <= 0 || cfg.testSize >= 1 {
		return nil, errors.NewValidationError("testSize", "must be in the open interval (0, 1)", cfg.testSize)
	}

	n, p := X.Dims()
	if n == 0 {
		return nil, errors.NewInsufficientDataError(op, 1, 0, "")
	}
	if y.Len() != n {
		return nil, errors.NewDimensionError(op, n, y.Len(), 0)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if cfg.shuffle {
		seed := cfg.seed
		if !cfg.hasSeed {
			seed = time.Now().UnixNano()
		}
		// ローカルな乱数源によるFisher–Yates
		rng := rand.New(rand.NewSource(seed))
		for i := n - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	testCount := int(math.Floor(float64(n) * cfg.testSize))
	trainCount := n - testCount

	split := &Split{
		TrainIndices: indices[:trainCount:trainCount],
		TestIndices:  indices[trainCount:],
	}
	split.XTrain, split.YTrain = gather(X, y, p, split.TrainIndices)
	split.XTest, split.YTest = gather(X, y, p, split.TestIndices)

	return split, nil
}

// gather は指定した行番号の行だけを取り出した行列とベクトルを作る
func gather(X mat.Matrix, y *mat.VecDense, p int, indices []int) (*mat.Dense, *mat.VecDense) {
	if len(indices) == 0 {
		return nil, nil
	}

	xOut := mat.NewDense(len(indices), p, nil)
	yOut := mat.NewVecDense(len(indices), nil)
	for i, idx := range indices {
		for j := 0; j < p; j++ {
			xOut.Set(i, j, X.At(idx, j))
		}
		yOut.SetVec(i, y.AtVec(idx))
	}
	return xOut, yOut
}
