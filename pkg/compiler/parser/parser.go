package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/compiler/ast"
	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/core/ops"
)

// MaxDepth bounds the nesting of parentheses and unary prefixes.
const MaxDepth = 256

// ParseError reports input that does not match the grammar.
type ParseError struct {
	Offset int    // byte offset of the offending token
	Near   string // unconsumed input from Offset; empty at end of input
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("parse error at end of input: %s", e.Msg)
	}
	return fmt.Sprintf("parse error at offset %d: %s near %q", e.Offset, e.Msg, e.Near)
}

// IsIncomplete reports whether err is a ParseError raised at end of input,
// i.e. more text could still complete the program.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Near == ""
}

type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
	src     []byte
	depth   int // parenthesis and unary nesting
}

func NewParser(s *lexer.Scanner, src []byte) *Parser {
	p := &Parser{
		scanner: s,
		src:     src,
	}
	p.nextToken()
	return p
}

// Parse parses a whole program from src.
func Parse(src []byte) (*ast.Program, error) {
	return NewParser(lexer.NewScanner(src), src).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.scanner.Next()
}

// Parse reads: [expr (separator expr)*] EOF
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	if p.curTok.Kind == lexer.KindEOF {
		return program, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	program.Exprs = append(program.Exprs, expr)

	for p.curTok.Kind == lexer.KindSeparator {
		sep := p.curTok
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		program.Seps = append(program.Seps, sep)
		program.Exprs = append(program.Exprs, expr)
	}

	if p.curTok.Kind != lexer.KindEOF {
		return nil, p.unexpected("expected separator or end of input")
	}
	return program, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseBinary(ops.MinBinary)
}

// parseBinary parses one precedence level; operators of the same level
// chain left to right.
func (p *Parser) parseBinary(level ops.Level) (ast.Node, error) {
	if level > ops.MaxBinary {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for p.isOperator(ops.ArityBinary, level) {
		op := p.curTok
		p.nextToken()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Node, error) {
	if !p.isOperator(ops.ArityUnary, ops.LevelUnary) {
		return p.parseAtom()
	}

	op := p.curTok
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.nextToken()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Operand: operand}, nil
}

func (p *Parser) parseAtom() (ast.Node, error) {
	switch p.curTok.Kind {
	case lexer.KindNumber:
		tok := p.curTok
		p.nextToken()
		return &ast.Leaf{Token: tok}, nil

	case lexer.KindLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		p.nextToken() // skip (
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.curTok.Kind != lexer.KindRParen {
			return nil, p.unexpected("expected ')'")
		}
		p.nextToken() // skip )
		return expr, nil

	default:
		return nil, p.unexpected("expected operand")
	}
}

func (p *Parser) isOperator(arity ops.Arity, level ops.Level) bool {
	if p.curTok.Kind != lexer.KindOperator {
		return false
	}
	info, ok := ops.Lookup(p.curTok.Text(p.src))
	return ok && info.Arity == arity && info.Level == level
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return p.errorf("expression nested deeper than %d levels", MaxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) unexpected(want string) error {
	switch p.curTok.Kind {
	case lexer.KindEOF:
		return p.errorf("%s", want)
	case lexer.KindError:
		return p.errorf("unknown token %q", p.curTok.Text(p.src))
	default:
		return p.errorf("unexpected %s %q, %s", p.curTok.Kind, p.curTok.Text(p.src), want)
	}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	off := int(p.curTok.Offset)
	if off > len(p.src) {
		off = len(p.src)
	}
	return &ParseError{
		Offset: off,
		Near:   string(p.src[off:]),
		Msg:    fmt.Sprintf(format, args...),
	}
}
