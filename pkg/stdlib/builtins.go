package stdlib

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/core/value"
)

// Format selects how integral results are rendered.
type Format uint8

const (
	FormatDec Format = iota
	FormatHex
	FormatOct
	FormatBin
)

var formatNames = [...]string{
	FormatDec: "dec",
	FormatHex: "hex",
	FormatOct: "oct",
	FormatBin: "bin",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat accepts the names of the calculator's format tags.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}
	return FormatDec, errors.Errorf("unknown format %q (want dec, hex, oct or bin)", s)
}

func Bin(i int64) string { return withPrefix(i, "0b", 2) }
func Oct(i int64) string { return withPrefix(i, "0o", 8) }
func Hex(i int64) string { return withPrefix(i, "0x", 16) }

func withPrefix(i int64, prefix string, base int) string {
	var b strings.Builder
	u := uint64(i)
	if i < 0 {
		b.WriteByte('-')
		u = -u
	}
	b.WriteString(prefix)
	b.WriteString(strings.ToUpper(strconv.FormatUint(u, base)))
	return b.String()
}

// FormatValue renders v in format f. Values that are not integral numbers
// always use the decimal form.
func FormatValue(v value.Value, f Format) string {
	if f == FormatDec {
		return v.String()
	}
	i, ok := v.Integer()
	if !ok {
		return v.String()
	}
	switch f {
	case FormatHex:
		return Hex(i)
	case FormatOct:
		return Oct(i)
	case FormatBin:
		return Bin(i)
	}
	return v.String()
}

// Formatter returns a value renderer for f, suitable for vm.Machine.Format.
func Formatter(f Format) func(value.Value) string {
	return func(v value.Value) string { return FormatValue(v, f) }
}
