package emitter

import (
	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/compiler/ast"
	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/compiler/parser"
	"github.com/agenthands/hexa/pkg/core/ops"
	"github.com/agenthands/hexa/pkg/vm"
)

// Emitter linearizes parsed programs into postfix bytecode.
type Emitter struct {
	src []byte
}

func NewEmitter(src []byte) *Emitter {
	return &Emitter{src: src}
}

// frame is one pending node of the postorder walk. visited is set once the
// children have been scheduled, so popping it again emits the operator.
type frame struct {
	node    ast.Node
	visited bool
}

// Emit appends each top-level expression in postorder, with the separator
// that preceded it in the source placed between them.
func (e *Emitter) Emit(prog *ast.Program) (*vm.Bytecode, error) {
	if len(prog.Exprs) > 0 && len(prog.Seps) != len(prog.Exprs)-1 {
		return nil, errors.Errorf("emitter: %d expressions with %d separators", len(prog.Exprs), len(prog.Seps))
	}

	bc := &vm.Bytecode{Src: e.src}
	var stack []frame

	for i, expr := range prog.Exprs {
		if i > 0 {
			if err := e.emitOp(bc, prog.Seps[i-1], ops.ArityNone); err != nil {
				return nil, err
			}
		}

		stack = append(stack[:0], frame{node: expr})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch n := f.node.(type) {
			case *ast.Leaf:
				if n.Token.Kind != lexer.KindNumber {
					return nil, errors.Errorf("emitter: leaf %q is not a literal", n.Token.Text(e.src))
				}
				bc.Append(ops.OpInvalid, n.Token)

			case *ast.Unary:
				if f.visited {
					if err := e.emitOp(bc, n.Op, ops.ArityUnary); err != nil {
						return nil, err
					}
					continue
				}
				stack = append(stack, frame{node: n, visited: true}, frame{node: n.Operand})

			case *ast.Binary:
				if f.visited {
					if err := e.emitOp(bc, n.Op, ops.ArityBinary); err != nil {
						return nil, err
					}
					continue
				}
				stack = append(stack, frame{node: n, visited: true}, frame{node: n.Right}, frame{node: n.Left})

			default:
				return nil, errors.Errorf("emitter: unexpected node %T", f.node)
			}
		}
	}

	if len(bc.Tokens) > vm.MaxTokens {
		return nil, errors.Errorf("emitter: program has %d tokens, limit is %d", len(bc.Tokens), vm.MaxTokens)
	}
	return bc, nil
}

func (e *Emitter) emitOp(bc *vm.Bytecode, tok lexer.Token, arity ops.Arity) error {
	alias := tok.Text(e.src)
	info, ok := ops.Lookup(alias)
	if !ok {
		return errors.Errorf("emitter: unknown operator %q", alias)
	}
	if info.Arity != arity {
		return errors.Errorf("emitter: %q takes %d operand(s), node has %d", alias, info.Arity, arity)
	}
	bc.Append(info.Code, tok)
	return nil
}

// Compile parses and linearizes src in one step.
func Compile(src []byte) (*vm.Bytecode, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return NewEmitter(src).Emit(prog)
}
