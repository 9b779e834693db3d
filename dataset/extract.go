package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// Features はデータセットから特徴量行列とターゲットベクトルを抽出する。
//
// 数値化の方針（意図的なフィルタリング規則であり、エラーではない）:
//   - ターゲットが数値として解釈できない行は X と y の両方から除外する
//   - 特徴量セルが数値として解釈できない場合は 0 に置き換える
//     （置き換えが発生した場合は DataConversionWarning を一度だけ発行する）
//
// 戻り値:
//   - *mat.Dense: 残った行数 × len(featureCols) の特徴量行列
//   - *mat.VecDense: 行と1:1対応するターゲットベクトル
//   - error: 列が存在しない場合はColumnNotFoundError、
//     使える行が残らなかった場合はInsufficientDataError
func Features(d *Dataset, featureCols []string, targetCol string) (*mat.Dense, *mat.VecDense, error) {
	const op = "dataset.Features"

	if len(featureCols) == 0 {
		return nil, nil, errors.NewValueError(op, "no feature columns selected")
	}
	for _, col := range featureCols {
		if !d.HasColumn(col) {
			return nil, nil, errors.NewColumnNotFoundError(op, col)
		}
	}
	if !d.HasColumn(targetCol) {
		return nil, nil, errors.NewColumnNotFoundError(op, targetCol)
	}

	p := len(featureCols)
	var (
		xData   []float64
		yData   []float64
		coerced int
	)

	for i := 0; i < d.Len(); i++ {
		target, ok := d.At(i, targetCol).Float()
		if !ok {
			// ターゲットが数値化できない行は両方から落とす
			continue
		}

		for _, col := range featureCols {
			f, ok := d.At(i, col).Float()
			if !ok {
				f = 0
				coerced++
			}
			xData = append(xData, f)
		}
		yData = append(yData, target)
	}

	if coerced > 0 {
		errors.Warn(errors.NewDataConversionWarning("text", "float64",
			"unparsable feature cells replaced with 0"))
	}

	n := len(yData)
	if n == 0 {
		return nil, nil, errors.NewInsufficientDataError(op, 1, 0,
			"no rows with a numeric target value")
	}

	return mat.NewDense(n, p, xData), mat.NewVecDense(n, yData), nil
}
