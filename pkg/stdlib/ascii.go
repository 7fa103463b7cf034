package stdlib

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// controlNames spells the characters that have no useful glyph.
var controlNames = map[int]string{
	0: "NUL", 1: "SOH", 2: "STX", 3: "ETX", 4: "EOT", 5: "ENQ", 6: "ACK",
	7: `\a`, 8: `\b`, 9: `\t`, 10: `\n`, 11: `\v`, 12: "FF", 13: `\r`,
	14: "SO", 15: "SI", 16: "DLE", 17: "DC1", 18: "DC2", 19: "DC3",
	20: "DC4", 21: "NAK", 22: "SYN", 23: "ETB", 24: "CAN", 25: "EM",
	26: "SUB", 27: `\e`, 28: "FS", 29: "GS", 30: "RS", 31: "US",
	32: "SPACE", 127: "DEL",
}

var ErrNotASCII = errors.New("not an ASCII code")

// Chr returns the printable name of an ASCII or extended ASCII code.
// Extended codes (128-255) are shown as their Latin-1 characters.
func Chr(code int64) (string, error) {
	if code < 0 || code > 255 {
		return "", errors.Wrapf(ErrNotASCII, "%d", code)
	}
	if name, ok := controlNames[int(code)]; ok {
		return name, nil
	}
	return string(rune(code)), nil
}

// Ord returns the code point of the first character of s.
func Ord(s string) (int, error) {
	if s == "" {
		return 0, errors.New("ord of empty string")
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, errors.Errorf("ord: invalid UTF-8 in %q", s)
	}
	return int(r), nil
}

// Row is one line of the ASCII table.
type Row struct {
	Dec  int
	Hex  string
	Oct  string
	Char string
}

// Cells returns the row as table cells.
func (r Row) Cells() []string {
	return []string{fmt.Sprintf("%d", r.Dec), r.Hex, r.Oct, r.Char}
}

// Table returns the rows for codes 0-127, or 0-255 when extended is set.
func Table(extended bool) []Row {
	n := 128
	if extended {
		n = 256
	}
	rows := make([]Row, n)
	for i := range rows {
		name, _ := Chr(int64(i))
		rows[i] = Row{
			Dec:  i,
			Hex:  fmt.Sprintf("%02X", i),
			Oct:  fmt.Sprintf("%03o", i),
			Char: name,
		}
	}
	return rows
}
