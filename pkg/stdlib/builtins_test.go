package stdlib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/hexa/pkg/core/value"
)

func TestBuiltins(t *testing.T) {
	t.Run("BinOctHex", func(t *testing.T) {
		assert.Equal(t, "0xFF", Hex(255))
		assert.Equal(t, "0o17", Oct(15))
		assert.Equal(t, "0b101", Bin(5))
		assert.Equal(t, "0x0", Hex(0))
		assert.Equal(t, "-0x1F", Hex(-31))
		assert.Equal(t, "-0x8000000000000000", Hex(math.MinInt64))
	})

	t.Run("ParseFormat", func(t *testing.T) {
		for _, name := range []string{"dec", "hex", "oct", "bin"} {
			f, err := ParseFormat(name)
			require.NoError(t, err)
			assert.Equal(t, name, f.String())
		}
		_, err := ParseFormat("big")
		assert.Error(t, err)
	})

	t.Run("FormatValue", func(t *testing.T) {
		tests := []struct {
			v    value.Value
			f    Format
			want string
		}{
			{value.Float(31), FormatHex, "0x1F"},
			{value.Float(15), FormatOct, "0o17"},
			{value.Float(5), FormatBin, "0b101"},
			{value.Float(-2), FormatBin, "-0b10"},
			{value.Float(31), FormatDec, "31"},
			{value.Float(1.5), FormatHex, "1.5"},
			{value.Float(math.Inf(1)), FormatHex, "inf"},
			{value.Float32(255), FormatHex, "0xFF"},
			{value.Void, FormatHex, "None"},
			{value.Tag("int"), FormatBin, "int"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, FormatValue(tt.v, tt.f))
			assert.Equal(t, tt.want, Formatter(tt.f)(tt.v))
		}
	})
}

func TestChrOrd(t *testing.T) {
	tests := []struct {
		code int64
		want string
	}{
		{0, "NUL"},
		{9, `\t`},
		{27, `\e`},
		{32, "SPACE"},
		{65, "A"},
		{126, "~"},
		{127, "DEL"},
		{233, "é"},
	}
	for _, tt := range tests {
		got, err := Chr(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, code := range []int64{-1, 256} {
		_, err := Chr(code)
		assert.ErrorIs(t, err, ErrNotASCII)
	}

	n, err := Ord("A")
	require.NoError(t, err)
	assert.Equal(t, 65, n)

	n, err = Ord("éa")
	require.NoError(t, err)
	assert.Equal(t, 233, n)

	_, err = Ord("")
	assert.Error(t, err)
	_, err = Ord("\xff")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	rows := Table(false)
	require.Len(t, rows, 128)
	assert.Equal(t, Row{Dec: 65, Hex: "41", Oct: "101", Char: "A"}, rows[65])
	assert.Equal(t, []string{"10", "0A", "012", `\n`}, rows[10].Cells())

	ext := Table(true)
	require.Len(t, ext, 256)
	assert.Equal(t, "FF", ext[255].Hex)
	assert.Equal(t, "377", ext[255].Oct)
}
