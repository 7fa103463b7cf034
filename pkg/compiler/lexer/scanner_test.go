package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/hexa/pkg/compiler/lexer"
)

type lexed struct {
	kind  lexer.Kind
	class lexer.Class
	text  string
}

func scanAll(src string) []lexed {
	b := []byte(src)
	s := lexer.NewScanner(b)
	var out []lexed
	for {
		tok := s.Next()
		out = append(out, lexed{tok.Kind, tok.Class, tok.Text(b)})
		if tok.Kind == lexer.KindEOF || tok.Kind == lexer.KindError {
			return out
		}
	}
}

func TestScannerOperatorsAndAliases(t *testing.T) {
	got := scanAll("5 + abs (!1 * 2)")
	want := []lexed{
		{lexer.KindNumber, lexer.ClassUnsigned, "5"},
		{lexer.KindOperator, lexer.ClassNone, "+"},
		{lexer.KindOperator, lexer.ClassNone, "abs"},
		{lexer.KindLParen, lexer.ClassNone, "("},
		{lexer.KindOperator, lexer.ClassNone, "!"},
		{lexer.KindNumber, lexer.ClassUnsigned, "1"},
		{lexer.KindOperator, lexer.ClassNone, "*"},
		{lexer.KindNumber, lexer.ClassUnsigned, "2"},
		{lexer.KindRParen, lexer.ClassNone, ")"},
		{lexer.KindEOF, lexer.ClassNone, ""},
	}
	assert.Equal(t, want, got)
}

func TestScannerLongestSymbol(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"2**3", []string{"2", "**", "3"}},
		{"1&&0", []string{"1", "&&", "0"}},
		{"6&~3", []string{"6", "&~", "3"}},
		{"1<<2<=3", []string{"1", "<<", "2", "<=", "3"}},
		{"1!=2", []string{"1", "!=", "2"}},
		{"1||0|1", []string{"1", "||", "0", "|", "1"}},
		{"5,10;1", []string{"5", ",", "10", ";", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var texts []string
			for _, l := range scanAll(tt.src) {
				if l.kind == lexer.KindEOF {
					break
				}
				require.NotEqual(t, lexer.KindError, l.kind, l.text)
				texts = append(texts, l.text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestScannerLiteralClasses(t *testing.T) {
	tests := []struct {
		src   string
		class lexer.Class
	}{
		{"0b1011", lexer.ClassBinary},
		{"0B1", lexer.ClassBinary},
		{"0o17", lexer.ClassOctal},
		{"0O7", lexer.ClassOctal},
		{"0x1F", lexer.ClassHex},
		{"0XdeadBEEF", lexer.ClassHex},
		{"1.5", lexer.ClassFloat},
		{".5", lexer.ClassFloat},
		{"0.", lexer.ClassFloat},
		{"12.", lexer.ClassFloat},
		{"-0.25", lexer.ClassFloat},
		{"0", lexer.ClassUnsigned},
		{"1234", lexer.ClassUnsigned},
		{"-7", lexer.ClassSigned},
		{"+0", lexer.ClassSigned},
		{"pi", lexer.ClassConstant},
		{"e", lexer.ClassConstant},
		{"inf", lexer.ClassConstant},
		{"nan", lexer.ClassConstant},
		{"uint", lexer.ClassType},
		{"string", lexer.ClassType},
		{"little", lexer.ClassFormat},
		{"hex", lexer.ClassFormat},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := scanAll(tt.src)
			require.Len(t, got, 2)
			assert.Equal(t, lexer.KindNumber, got[0].kind)
			assert.Equal(t, tt.class, got[0].class)
			assert.Equal(t, tt.src, got[0].text)
			assert.Equal(t, tt.class, lexer.Classify(tt.src))
		})
	}
}

func TestScannerSignContext(t *testing.T) {
	tests := []struct {
		src  string
		want []lexed
	}{
		{"1 -2", []lexed{
			{lexer.KindNumber, lexer.ClassUnsigned, "1"},
			{lexer.KindOperator, lexer.ClassNone, "-"},
			{lexer.KindNumber, lexer.ClassUnsigned, "2"},
		}},
		{"1 + -2", []lexed{
			{lexer.KindNumber, lexer.ClassUnsigned, "1"},
			{lexer.KindOperator, lexer.ClassNone, "+"},
			{lexer.KindNumber, lexer.ClassSigned, "-2"},
		}},
		{"(-.5)-1", []lexed{
			{lexer.KindLParen, lexer.ClassNone, "("},
			{lexer.KindNumber, lexer.ClassFloat, "-.5"},
			{lexer.KindRParen, lexer.ClassNone, ")"},
			{lexer.KindOperator, lexer.ClassNone, "-"},
			{lexer.KindNumber, lexer.ClassUnsigned, "1"},
		}},
		{"3, +4", []lexed{
			{lexer.KindNumber, lexer.ClassUnsigned, "3"},
			{lexer.KindSeparator, lexer.ClassNone, ","},
			{lexer.KindNumber, lexer.ClassSigned, "+4"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := scanAll(tt.src)
			require.Equal(t, lexer.KindEOF, got[len(got)-1].kind)
			assert.Equal(t, tt.want, got[:len(got)-1])
		})
	}
}

func TestScannerWordAliases(t *testing.T) {
	got := scanAll("1 add 2 sep 3 end 4 bitandinv 5")
	kinds := make([]lexer.Kind, 0, len(got))
	for _, l := range got {
		kinds = append(kinds, l.kind)
	}
	assert.Equal(t, []lexer.Kind{
		lexer.KindNumber, lexer.KindOperator, lexer.KindNumber,
		lexer.KindSeparator, lexer.KindNumber, lexer.KindSeparator,
		lexer.KindNumber, lexer.KindOperator, lexer.KindNumber,
		lexer.KindEOF,
	}, kinds)
}

func TestScannerErrors(t *testing.T) {
	for _, src := range []string{"foo", "1 = 2", "#", ".", "PI", "1 @ 2", "é"} {
		t.Run(src, func(t *testing.T) {
			got := scanAll(src)
			assert.Equal(t, lexer.KindError, got[len(got)-1].kind)
		})
	}
}

func TestScannerReset(t *testing.T) {
	s := lexer.NewScanner([]byte("1 +"))
	s.Next()
	s.Next()
	src := []byte("-3")
	s.Reset(src)
	tok := s.Next()
	assert.Equal(t, lexer.KindNumber, tok.Kind)
	assert.Equal(t, lexer.ClassSigned, tok.Class)
	assert.Equal(t, "-3", tok.Text(src))
}

func TestScannerLines(t *testing.T) {
	s := lexer.NewScanner([]byte("1\n+\n2"))
	var lines []uint32
	for tok := s.Next(); tok.Kind != lexer.KindEOF; tok = s.Next() {
		lines = append(lines, tok.Line)
	}
	assert.Equal(t, []uint32{1, 2, 3}, lines)
}
