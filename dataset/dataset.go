// Package dataset provides the tabular data model of the stella modeling
// core: a column-ordered collection of rows whose cells are tagged scalars,
// plus the value utilities and the feature/target extraction used ahead of
// training.
package dataset

import (
	"sort"
	"strconv"
	"strings"
)

// Kind はセル値の種別を表す
type Kind int

const (
	// KindMissing は値が存在しない（キー欠落・空文字列など）状態
	KindMissing Kind = iota
	// KindNumber は数値
	KindNumber
	// KindText は文字列
	KindText
)

// Value はデータセットのセル1つ分のタグ付きスカラー値。
// 数値・文字列・欠損のいずれかを保持し、数値への解釈は Float に一元化する。
type Value struct {
	kind Kind
	num  float64
	text string
}

// Num は数値のValueを作成する
func Num(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Str は文字列のValueを作成する。空文字列は欠損として扱う。
func Str(s string) Value {
	if s == "" {
		return Value{kind: KindMissing}
	}
	return Value{kind: KindText, text: s}
}

// Missing は欠損のValueを作成する
func Missing() Value {
	return Value{kind: KindMissing}
}

// Kind は値の種別を返す
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing は値が欠損かどうかを返す
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// String はセル値の文字列表現を返す。
// 数値は最短表現（strconv 'g'）、欠損は空文字列。
// 集計・置換のバケットキーはこの表現で揃える（1 と "1" は同一視される）。
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// Float は値を数値として解釈する。
// 数値はそのまま、文字列は前後の空白を除いた上で数値として解析を試みる。
// 解釈できない場合と欠損は ok=false を返す。
// 特徴量抽出・ユニーク値・統計のすべてがこの1つの解釈規則を共有する。
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Row は列名からセル値へのマッピング
type Row map[string]Value

// Dataset は列順を保持する行の集合。
// 置換などの「変更」操作は常に新しいDatasetを返し、元の値は変更しない。
type Dataset struct {
	columns []string
	rows    []Row
}

// New は列名を指定して空のDatasetを作成する
func New(columns []string) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Dataset{columns: cols}
}

// FromRecords は取り込み層から渡される素朴なレコード列からDatasetを構築する。
// 列の順序は出現順（同一レコード内はキーのソート順）で決まる。
// セル値の対応: 数値型→Number、空でない文字列→Text、それ以外（nil等）→Missing。
func FromRecords(records []map[string]any) *Dataset {
	ds := &Dataset{}
	seen := make(map[string]bool)

	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := make(Row, len(rec))
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				ds.columns = append(ds.columns, k)
			}
			row[k] = valueOf(rec[k])
		}
		ds.rows = append(ds.rows, row)
	}

	return ds
}

func valueOf(cell any) Value {
	switch c := cell.(type) {
	case float64:
		return Num(c)
	case float32:
		return Num(float64(c))
	case int:
		return Num(float64(c))
	case int32:
		return Num(float64(c))
	case int64:
		return Num(float64(c))
	case string:
		return Str(c)
	default:
		return Missing()
	}
}

// Append は行を追加する。未知の列は列集合に加わる。
func (d *Dataset) Append(row Row) {
	r := make(Row, len(row))
	for k, v := range row {
		if !d.hasColumn(k) {
			d.columns = append(d.columns, k)
		}
		r[k] = v
	}
	d.rows = append(d.rows, r)
}

// Len は行数を返す
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Columns は列名のコピーを返す
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// HasColumn は列が存在するかどうかを返す
func (d *Dataset) HasColumn(name string) bool {
	return d.hasColumn(name)
}

func (d *Dataset) hasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// At は i 行目の列 column のセル値を返す。キーが無い場合は欠損。
func (d *Dataset) At(i int, column string) Value {
	v, ok := d.rows[i][column]
	if !ok {
		return Missing()
	}
	return v
}

// clone はDatasetの深いコピーを返す
func (d *Dataset) clone() *Dataset {
	out := &Dataset{
		columns: make([]string, len(d.columns)),
		rows:    make([]Row, len(d.rows)),
	}
	copy(out.columns, d.columns)
	for i, row := range d.rows {
		r := make(Row, len(row))
		for k, v := range row {
			r[k] = v
		}
		out.rows[i] = r
	}
	return out
}
