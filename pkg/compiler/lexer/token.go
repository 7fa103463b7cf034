package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF       Kind = iota
	KindError          // unknown or malformed input
	KindNumber         // number literal, constant, type or format tag
	KindOperator       // unary or binary operator alias
	KindSeparator      // , sep ; end
	KindLParen         // (
	KindRParen         // )
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindError:
		return "error"
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindSeparator:
		return "separator"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	}
	return "unknown"
}

// Class refines KindNumber tokens by literal form.
type Class uint8

const (
	ClassNone Class = iota
	ClassBinary
	ClassOctal
	ClassHex
	ClassFloat
	ClassUnsigned
	ClassSigned
	ClassConstant
	ClassType
	ClassFormat
)

func (c Class) String() string {
	switch c {
	case ClassBinary:
		return "binary"
	case ClassOctal:
		return "octal"
	case ClassHex:
		return "hexadecimal"
	case ClassFloat:
		return "float"
	case ClassUnsigned:
		return "unsigned"
	case ClassSigned:
		return "signed"
	case ClassConstant:
		return "constant"
	case ClassType:
		return "type"
	case ClassFormat:
		return "format"
	}
	return "none"
}

// Token represents a lexical unit pointing back to the source.
// Small fixed-size struct so token streams never copy source text.
type Token struct {
	Kind   Kind
	Class  Class
	Offset uint32
	Length uint32
	Line   uint32
}

// Text returns the source text of the token.
func (t Token) Text(src []byte) string {
	end := t.Offset + t.Length
	if int(end) > len(src) {
		return ""
	}
	return string(src[t.Offset:end])
}

// End returns the offset just past the token.
func (t Token) End() int { return int(t.Offset + t.Length) }
