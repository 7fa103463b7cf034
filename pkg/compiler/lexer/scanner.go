package lexer

import (
	"unicode/utf8"

	"github.com/agenthands/hexa/pkg/core/ops"
)

// Scanner performs lexical analysis on calculator source.
type Scanner struct {
	source []byte
	cursor int
	line   int
	prev   Kind // kind of the last token returned, decides what a sign means
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.prev = KindEOF
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	tok := s.next()
	s.prev = tok.Kind
	return tok
}

func (s *Scanner) next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(len(s.source)), Line: uint32(s.line)}
	}

	start := s.cursor
	ch := s.source[s.cursor]

	// 1. Parentheses
	switch ch {
	case '(':
		s.cursor++
		return s.token(KindLParen, ClassNone, start)
	case ')':
		s.cursor++
		return s.token(KindRParen, ClassNone, start)
	}

	// 2. Numbers. A sign belongs to the literal only where an operand is
	// expected, so "1 -2" stays a subtraction.
	if isNumberStart(ch) || (isSign(ch) && s.expectOperand() && isNumberStart(s.peek())) {
		return s.scanNumber()
	}

	// 3. Words: constants, tags and operator aliases
	if isAlpha(ch) {
		return s.scanWord()
	}

	// 4. Symbolic operators and separators
	return s.scanSymbol()
}

func (s *Scanner) token(kind Kind, class Class, start int) Token {
	return Token{
		Kind:   kind,
		Class:  class,
		Offset: uint32(start),
		Length: uint32(s.cursor - start),
		Line:   uint32(s.line),
	}
}

func (s *Scanner) expectOperand() bool {
	return s.prev != KindNumber && s.prev != KindRParen
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.line++
			s.cursor++
		} else {
			break
		}
	}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	class, n := MatchNumber(s.source[s.cursor:])
	if n == 0 {
		s.cursor++
		return s.token(KindError, ClassNone, start)
	}
	s.cursor += n
	return s.token(KindNumber, class, start)
}

func (s *Scanner) scanWord() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isAlpha(s.source[s.cursor]) {
		s.cursor++
	}

	word := s.source[start:s.cursor]
	if class := ClassifyWord(word); class != ClassNone {
		return s.token(KindNumber, class, start)
	}
	if info, ok := ops.Lookup(string(word)); ok {
		if info.IsSeparator() {
			return s.token(KindSeparator, ClassNone, start)
		}
		return s.token(KindOperator, ClassNone, start)
	}
	return s.token(KindError, ClassNone, start)
}

func (s *Scanner) scanSymbol() Token {
	start := s.cursor
	rest := s.source[s.cursor:]
	for _, sym := range ops.Symbols() {
		if len(rest) < len(sym) || string(rest[:len(sym)]) != sym {
			continue
		}
		s.cursor += len(sym)
		info, _ := ops.Lookup(sym)
		if info.IsSeparator() {
			return s.token(KindSeparator, ClassNone, start)
		}
		return s.token(KindOperator, ClassNone, start)
	}

	_, size := utf8.DecodeRune(rest)
	s.cursor += size
	return s.token(KindError, ClassNone, start)
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberStart(ch byte) bool {
	return isDigit(ch) || ch == '.'
}

func isSign(ch byte) bool {
	return ch == '+' || ch == '-'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
