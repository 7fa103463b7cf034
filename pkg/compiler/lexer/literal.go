package lexer

import "regexp"

// Patterns is the literal grammar. These expressions are the de facto wire
// format of the calculator and must stay byte-for-byte identical.
var Patterns = map[Class]string{
	ClassBinary:   `0[bB][01]+`,
	ClassOctal:    `0[oO][01234567]+`,
	ClassHex:      `0[xX][0123456789abcdefABCDEF]+`,
	ClassFloat:    `[+-]?((0?\.[0123456789]+)|((0\.)|([123456789][0123456789]*\.[0123456789]*)))`,
	ClassUnsigned: `0|([123456789][0123456789]*)`,
	ClassSigned:   `[+-](0|([123456789][0123456789]*))`,
	ClassConstant: `pi|e|inf|nan`,
	ClassType:     `int|uint|float|string`,
	ClassFormat:   `dec|hex|oct|bin|big|little`,
}

// numeric classes in tie-break order; word classes are matched whole.
var (
	numericClasses = []Class{ClassBinary, ClassOctal, ClassHex, ClassFloat, ClassUnsigned, ClassSigned}
	wordClasses    = []Class{ClassConstant, ClassType, ClassFormat}
)

var (
	prefixRes = make(map[Class]*regexp.Regexp)
	wholeRes  = make(map[Class]*regexp.Regexp)
)

func init() {
	for class, p := range Patterns {
		prefixRes[class] = regexp.MustCompile(`^(?:` + p + `)`)
		wholeRes[class] = regexp.MustCompile(`^(?:` + p + `)$`)
	}
}

// MatchNumber returns the class and length of the longest numeric literal
// at the start of b, or ClassNone and 0.
func MatchNumber(b []byte) (Class, int) {
	best, bestLen := ClassNone, 0
	for _, class := range numericClasses {
		if loc := prefixRes[class].FindIndex(b); loc != nil && loc[1] > bestLen {
			best, bestLen = class, loc[1]
		}
	}
	return best, bestLen
}

// ClassifyWord returns the literal class of an alphabetic word: a named
// constant, a type tag or a format tag. Other words return ClassNone.
func ClassifyWord(w []byte) Class {
	for _, class := range wordClasses {
		if wholeRes[class].Match(w) {
			return class
		}
	}
	return ClassNone
}

// Classify returns the class of a complete literal text, or ClassNone if
// the text is not a literal.
func Classify(text string) Class {
	b := []byte(text)
	if class, n := MatchNumber(b); n == len(b) && n > 0 {
		return class
	}
	return ClassifyWord(b)
}
