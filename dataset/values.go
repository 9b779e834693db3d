package dataset

import (
	"sort"

	"github.com/liyachittilappilly/stella-linearregression/pkg/errors"
)

// ValueCount は列内のひとつの値とその出現回数
type ValueCount struct {
	Value string
	Count int
}

// UniqueValues は列に出現する重複なしの値一覧を返す。
// 欠損は除外し、同一性は文字列表現で判定する（1 と "1" は同じ値）。
// 全ての値が数値として解釈できる場合は昇順、
// それ以外は文字列表現の辞書順で並べる。
func UniqueValues(d *Dataset, column string) ([]Value, error) {
	if !d.HasColumn(column) {
		return nil, errors.NewColumnNotFoundError("dataset.UniqueValues", column)
	}

	seen := make(map[string]bool)
	var uniques []Value
	allNumeric := true

	for i := 0; i < d.Len(); i++ {
		v := d.At(i, column)
		if v.IsMissing() {
			continue
		}
		key := v.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := v.Float(); !ok {
			allNumeric = false
		}
		uniques = append(uniques, v)
	}

	if allNumeric {
		sort.Slice(uniques, func(i, j int) bool {
			fi, _ := uniques[i].Float()
			fj, _ := uniques[j].Float()
			return fi < fj
		})
	} else {
		// 型が混在する場合は文字列表現の比較に退避する
		sort.Slice(uniques, func(i, j int) bool {
			return uniques[i].String() < uniques[j].String()
		})
	}

	return uniques, nil
}

// ValueCounts は列の値ごとの出現回数を返す。
// バケットはセル値の文字列表現で決まり、欠損も空文字列のバケットとして数える。
// 結果は出現回数の降順、同数の場合は先に出現した値が先（安定ソート）。
func ValueCounts(d *Dataset, column string) ([]ValueCount, error) {
	if !d.HasColumn(column) {
		return nil, errors.NewColumnNotFoundError("dataset.ValueCounts", column)
	}

	counts := make(map[string]int)
	var order []string

	for i := 0; i < d.Len(); i++ {
		key := d.At(i, column).String()
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	result := make([]ValueCount, 0, len(order))
	for _, key := range order {
		result = append(result, ValueCount{Value: key, Count: counts[key]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result, nil
}

// ReplacementMap はカテゴリ値の文字列表現から置換先数値へのマッピング
type ReplacementMap map[string]float64

// ReplaceValues は列のセル値を置換した新しいDatasetを返す。
// セル値の文字列表現がマップのキーに一致する場合のみ数値に置き換え、
// 一致しない値はそのまま残す。入力のDatasetは変更されない。
func ReplaceValues(d *Dataset, column string, replacements ReplacementMap) (*Dataset, error) {
	if !d.HasColumn(column) {
		return nil, errors.NewColumnNotFoundError("dataset.ReplaceValues", column)
	}

	out := d.clone()
	for i := range out.rows {
		v := out.At(i, column)
		if mapped, ok := replacements[v.String()]; ok {
			out.rows[i][column] = Num(mapped)
		}
	}

	return out, nil
}
