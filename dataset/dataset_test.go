package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	ds := FromRecords([]map[string]any{
		{"city": "tokyo", "price": 120.5, "rooms": 3},
		{"city": "osaka", "price": "98.2", "rooms": 2, "age": 14},
		{"city": "kyoto", "price": nil, "rooms": 1},
	})

	require.Equal(t, 3, ds.Len())
	// Column order: sorted keys of the first record, then later additions.
	require.Equal(t, []string{"city", "price", "rooms", "age"}, ds.Columns())

	require.Equal(t, KindText, ds.At(0, "city").Kind())
	require.Equal(t, KindNumber, ds.At(0, "price").Kind())
	require.Equal(t, KindText, ds.At(1, "price").Kind())
	require.True(t, ds.At(2, "price").IsMissing())
	// Absent key reads as missing.
	require.True(t, ds.At(0, "age").IsMissing())
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"number", Num(2.5), 2.5, true},
		{"numeric text", Str("42"), 42, true},
		{"numeric text with spaces", Str(" 3.14 "), 3.14, true},
		{"negative scientific", Str("-1e3"), -1000, true},
		{"plain text", Str("tokyo"), 0, false},
		{"missing", Missing(), 0, false},
		{"empty string is missing", Str(""), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Float()
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	require.Equal(t, "1", Num(1).String())
	require.Equal(t, "2.5", Num(2.5).String())
	require.Equal(t, "tokyo", Str("tokyo").String())
	require.Equal(t, "", Missing().String())
	// Number and its textual form share a string representation.
	require.Equal(t, Num(1).String(), Str("1").String())
}

func TestAppendAddsUnknownColumns(t *testing.T) {
	ds := New([]string{"a"})
	ds.Append(Row{"a": Num(1), "b": Str("x")})

	require.Equal(t, 1, ds.Len())
	require.Equal(t, []string{"a", "b"}, ds.Columns())
	require.True(t, ds.HasColumn("b"))
	require.False(t, ds.HasColumn("c"))
}
