package dataset

import (
	"math"
	"sort"
)

// ColumnSummary はひとつの数値列の要約統計量
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe は数値として解釈できる値を1つ以上含む列ごとの要約統計量を返す。
// 列の並びはデータセットの列順に従う。
//
// 分位点は sorted[floor(n*q)] による非補間の推定量を用いる。
// 標準的な補間方式とは一致しないが、報告される統計値を変えないために
// この定義を維持している。
func Describe(d *Dataset) []ColumnSummary {
	var summaries []ColumnSummary

	for _, col := range d.columns {
		var vals []float64
		for i := 0; i < d.Len(); i++ {
			if f, ok := d.At(i, col).Float(); ok {
				vals = append(vals, f)
			}
		}
		if len(vals) == 0 {
			continue
		}

		sort.Float64s(vals)
		n := len(vals)

		var sum float64
		for _, v := range vals {
			sum += v
		}
		mean := sum / float64(n)

		std := 0.0
		if n > 1 {
			var ss float64
			for _, v := range vals {
				ss += (v - mean) * (v - mean)
			}
			std = math.Sqrt(ss / float64(n-1))
		}

		summaries = append(summaries, ColumnSummary{
			Column: col,
			Count:  n,
			Mean:   mean,
			Std:    std,
			Min:    vals[0],
			Q25:    quantile(vals, 0.25),
			Median: quantile(vals, 0.5),
			Q75:    quantile(vals, 0.75),
			Max:    vals[n-1],
		})
	}

	return summaries
}

// quantile は floor(n*q) でソート済み配列に添字アクセスする。補間はしない。
func quantile(sorted []float64, q float64) float64 {
	idx := int(math.Floor(float64(len(sorted)) * q))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
