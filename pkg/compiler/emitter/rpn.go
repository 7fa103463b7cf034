package emitter

import (
	"github.com/pkg/errors"

	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/compiler/parser"
	"github.com/agenthands/hexa/pkg/core/ops"
	"github.com/agenthands/hexa/pkg/vm"
)

// CompileRPN builds bytecode from source that is already in postfix order:
// whitespace separated literals and operator aliases, taken as written.
// Operand counts are not checked here; the machine reports underflow.
func CompileRPN(src []byte) (*vm.Bytecode, error) {
	bc := &vm.Bytecode{Src: src}

	for i := 0; i < len(src); {
		if isSpace(src[i]) {
			i++
			continue
		}
		start := i
		for i < len(src) && !isSpace(src[i]) {
			i++
		}
		word := string(src[start:i])
		tok := lexer.Token{Offset: uint32(start), Length: uint32(i - start)}

		if class := lexer.Classify(word); class != lexer.ClassNone {
			tok.Kind, tok.Class = lexer.KindNumber, class
			bc.Append(ops.OpInvalid, tok)
			continue
		}
		info, ok := ops.Lookup(word)
		if !ok {
			return nil, &parser.ParseError{Offset: start, Near: word, Msg: "unknown token"}
		}
		tok.Kind = lexer.KindOperator
		if info.IsSeparator() {
			tok.Kind = lexer.KindSeparator
		}
		bc.Append(info.Code, tok)
	}

	if len(bc.Tokens) > vm.MaxTokens {
		return nil, errors.Errorf("emitter: program has %d tokens, limit is %d", len(bc.Tokens), vm.MaxTokens)
	}
	return bc, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
