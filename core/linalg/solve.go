// Package linalg implements the dense linear-system solver backing the
// least-squares estimator.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// pivotTolerance 未満のピボットは数値的にゼロとみなし、特異行列として扱う
const pivotTolerance = 1e-12

// Solve は部分ピボット選択付きガウス消去法で連立一次方程式 A·x = b を解く
//
// パラメータ:
//   - a: n×n の係数行列（変更されない）
//   - b: 長さnの右辺ベクトル（変更されない）
//
// 戻り値:
//   - []float64: 解ベクトル x
//   - error: 行列が正方でない、次元不一致、または特異行列の場合
//
// 各ピボット列で絶対値最大の行を選んで入れ替えることで数値誤差を抑える。
// ピボットが数値的にゼロの場合はNaNを返さず ErrSingularSystem で失敗する。
func Solve(a mat.Matrix, b []float64) ([]float64, error) {
	n, c := a.Dims()
	if n == 0 {
		return nil, errors.NewModelError("linalg.Solve", "empty system", errors.ErrEmptyData)
	}
	if n != c {
		return nil, errors.NewDimensionError("linalg.Solve", n, c, 1)
	}
	if len(b) != n {
		return nil, errors.NewDimensionError("linalg.Solve", n, len(b), 0)
	}

	// 入力を保護するため作業用コピー上で消去を行う
	work := mat.DenseCopyOf(a)
	rhs := make([]float64, n)
	copy(rhs, b)

	// 前進消去
	for i := 0; i < n; i++ {
		// ピボット選択: i列目で絶対値最大の行を選ぶ
		pivotRow := i
		maxAbs := math.Abs(work.At(i, i))
		for k := i + 1; k < n; k++ {
			if abs := math.Abs(work.At(k, i)); abs > maxAbs {
				maxAbs = abs
				pivotRow = k
			}
		}

		if maxAbs < pivotTolerance {
			return nil, errors.Wrapf(errors.ErrSingularSystem, "linalg.Solve: no usable pivot in column %d", i)
		}

		if pivotRow != i {
			swapRows(work, rhs, i, pivotRow)
		}

		// ピボットより下の成分を消去
		pivot := work.At(i, i)
		for k := i + 1; k < n; k++ {
			factor := work.At(k, i) / pivot
			if factor == 0 {
				continue
			}
			for j := i; j < n; j++ {
				work.Set(k, j, work.At(k, j)-factor*work.At(i, j))
			}
			rhs[k] -= factor * rhs[i]
		}
	}

	// 後退代入
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= work.At(i, j) * x[j]
		}
		x[i] = sum / work.At(i, i)
	}

	return x, nil
}

func swapRows(m *mat.Dense, rhs []float64, i, j int) {
	_, c := m.Dims()
	for col := 0; col < c; col++ {
		vi, vj := m.At(i, col), m.At(j, col)
		m.Set(i, col, vj)
		m.Set(j, col, vi)
	}
	rhs[i], rhs[j] = rhs[j], rhs[i]
}
