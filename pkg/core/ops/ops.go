package ops

import "sort"

// Code identifies a canonical operation. Every alias of an operation
// resolves to the same Code.
type Code uint8

const (
	OpInvalid Code = iota

	// binary
	OpGCD
	OpLCM
	OpCast
	OpPow
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpBitAndInv
	OpBitAnd
	OpAdd
	OpSub
	OpXor
	OpBitOr
	OpEq
	OpNeq
	OpGt
	OpLt
	OpGte
	OpLte
	OpAnd
	OpOr

	// unary
	OpSqrt
	OpSin
	OpCos
	OpTan
	OpAbs
	OpSgn
	OpFloor
	OpRound
	OpInv
	OpNot

	// separators
	OpSep
	OpEnd

	NumCodes
)

// Arity is the number of operands an operation consumes. Separators
// consume none: they only peek at the top of the stack.
type Arity uint8

const (
	ArityNone   Arity = 0
	ArityUnary  Arity = 1
	ArityBinary Arity = 2
)

// Category groups operations by the kind of value they work on.
type Category uint8

const (
	Arithmetic Category = iota
	Bitwise
	Comparison
	Logical
	Conversion
	Separator
)

func (c Category) String() string {
	switch c {
	case Arithmetic:
		return "arithmetic"
	case Bitwise:
		return "bitwise"
	case Comparison:
		return "comparison"
	case Logical:
		return "logical"
	case Conversion:
		return "conversion"
	case Separator:
		return "separator"
	}
	return "unknown"
}

// Level is the binding strength of an operator in the grammar. Higher
// levels bind tighter.
type Level uint8

const (
	LevelNone Level = iota
	LevelOr
	LevelAnd
	LevelCompare
	LevelAdd
	LevelMul
	LevelPow
	LevelCast
	LevelFunc
	LevelUnary

	// MinBinary and MaxBinary bound the binary precedence levels.
	MinBinary = LevelOr
	MaxBinary = LevelFunc
)

// Info describes one canonical operation.
type Info struct {
	Code     Code
	Name     string // canonical name
	Arity    Arity
	Category Category
	Level    Level
	Aliases  []string // symbolic form first, when there is one
}

// IsSeparator reports whether the operation is a stream-level separator.
func (i *Info) IsSeparator() bool { return i.Category == Separator }

var table = []Info{
	{OpGCD, "gcd", ArityBinary, Arithmetic, LevelFunc, []string{"gcd"}},
	{OpLCM, "lcm", ArityBinary, Arithmetic, LevelFunc, []string{"lcm"}},
	{OpCast, "cast", ArityBinary, Conversion, LevelCast, []string{"cast", "as"}},
	{OpPow, "pow", ArityBinary, Arithmetic, LevelPow, []string{"**", "pow"}},
	{OpMul, "mul", ArityBinary, Arithmetic, LevelMul, []string{"*", "mul"}},
	{OpDiv, "div", ArityBinary, Arithmetic, LevelMul, []string{"/", "div"}},
	{OpMod, "mod", ArityBinary, Arithmetic, LevelMul, []string{"%", "mod"}},
	{OpShl, "shl", ArityBinary, Bitwise, LevelMul, []string{"<<", "shl"}},
	{OpShr, "shr", ArityBinary, Bitwise, LevelMul, []string{">>", "shr"}},
	{OpBitAndInv, "bitandinv", ArityBinary, Bitwise, LevelMul, []string{"&~", "bitandinv"}},
	{OpBitAnd, "bitand", ArityBinary, Bitwise, LevelMul, []string{"&", "bitand"}},
	{OpAdd, "add", ArityBinary, Arithmetic, LevelAdd, []string{"+", "add"}},
	{OpSub, "sub", ArityBinary, Arithmetic, LevelAdd, []string{"-", "sub"}},
	{OpXor, "xor", ArityBinary, Bitwise, LevelAdd, []string{"^", "xor"}},
	{OpBitOr, "bitor", ArityBinary, Bitwise, LevelAdd, []string{"|", "bitor"}},
	{OpEq, "eq", ArityBinary, Comparison, LevelCompare, []string{"==", "eq"}},
	{OpNeq, "neq", ArityBinary, Comparison, LevelCompare, []string{"!=", "neq"}},
	{OpGt, "gt", ArityBinary, Comparison, LevelCompare, []string{">", "gt"}},
	{OpLt, "lt", ArityBinary, Comparison, LevelCompare, []string{"<", "lt"}},
	{OpGte, "gte", ArityBinary, Comparison, LevelCompare, []string{">=", "gte"}},
	{OpLte, "lte", ArityBinary, Comparison, LevelCompare, []string{"<=", "lte"}},
	{OpAnd, "and", ArityBinary, Logical, LevelAnd, []string{"&&", "and"}},
	{OpOr, "or", ArityBinary, Logical, LevelOr, []string{"||", "or"}},

	{OpSqrt, "sqrt", ArityUnary, Arithmetic, LevelUnary, []string{"sqrt"}},
	{OpSin, "sin", ArityUnary, Arithmetic, LevelUnary, []string{"sin"}},
	{OpCos, "cos", ArityUnary, Arithmetic, LevelUnary, []string{"cos"}},
	{OpTan, "tan", ArityUnary, Arithmetic, LevelUnary, []string{"tan"}},
	{OpAbs, "abs", ArityUnary, Arithmetic, LevelUnary, []string{"abs"}},
	{OpSgn, "sgn", ArityUnary, Arithmetic, LevelUnary, []string{"sgn"}},
	{OpFloor, "floor", ArityUnary, Arithmetic, LevelUnary, []string{"floor"}},
	{OpRound, "round", ArityUnary, Arithmetic, LevelUnary, []string{"round"}},
	{OpInv, "inv", ArityUnary, Bitwise, LevelUnary, []string{"~", "inv"}},
	{OpNot, "not", ArityUnary, Logical, LevelUnary, []string{"!", "not"}},

	{OpSep, "sep", ArityNone, Separator, LevelNone, []string{",", "sep"}},
	{OpEnd, "end", ArityNone, Separator, LevelNone, []string{";", "end"}},
}

var (
	byAlias = make(map[string]*Info)
	byCode  [NumCodes]*Info
	symbols []string
)

func init() {
	for i := range table {
		info := &table[i]
		byCode[info.Code] = info
		for _, alias := range info.Aliases {
			if _, dup := byAlias[alias]; dup {
				panic("ops: duplicate alias " + alias)
			}
			byAlias[alias] = info
			if !isWord(alias) {
				symbols = append(symbols, alias)
			}
		}
	}
	// Longest first so the scanner never splits "**" into "*" "*".
	sort.SliceStable(symbols, func(i, j int) bool {
		return len(symbols[i]) > len(symbols[j])
	})
}

// Lookup resolves an alias, symbolic or word form.
func Lookup(alias string) (*Info, bool) {
	info, ok := byAlias[alias]
	return info, ok
}

// ByCode returns the operation for a code, or nil for an unknown code.
func ByCode(c Code) *Info {
	if c >= NumCodes {
		return nil
	}
	return byCode[c]
}

// Symbols returns the symbolic aliases, longest first. The slice is shared;
// callers must not modify it.
func Symbols() []string { return symbols }

// All returns every operation in registry order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table)
	return out
}

func (c Code) String() string {
	if info := ByCode(c); info != nil {
		return info.Name
	}
	return "invalid"
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !(ch >= 'a' && ch <= 'z') && !(ch >= 'A' && ch <= 'Z') {
			return false
		}
	}
	return len(s) > 0
}
