package vm

import (
	"strings"

	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/core/ops"
)

// MaxTokens is the largest token index an instruction can address.
const MaxTokens = 1 << 24

// Bytecode is a postfix instruction stream. Each instruction packs the
// operation code in the high byte and the index of its source token in the
// low 24 bits; code ops.OpInvalid means "push the literal".
type Bytecode struct {
	Src          []byte
	Tokens       []lexer.Token
	Instructions []uint32
}

// Encode packs an instruction word.
func Encode(code ops.Code, tok int) uint32 {
	return uint32(code)<<24 | uint32(tok)&0x00FFFFFF
}

// Decode unpacks an instruction word.
func Decode(instr uint32) (ops.Code, int) {
	return ops.Code(instr >> 24), int(instr & 0x00FFFFFF)
}

// Append adds tok to the stream with its resolved operation code.
func (bc *Bytecode) Append(code ops.Code, tok lexer.Token) {
	bc.Instructions = append(bc.Instructions, Encode(code, len(bc.Tokens)))
	bc.Tokens = append(bc.Tokens, tok)
}

// Len returns the number of instructions.
func (bc *Bytecode) Len() int { return len(bc.Instructions) }

// Text returns the source text of the i-th token.
func (bc *Bytecode) Text(i int) string {
	return bc.Tokens[i].Text(bc.Src)
}

// Texts returns the token texts in stream order.
func (bc *Bytecode) Texts() []string {
	out := make([]string, len(bc.Tokens))
	for i := range bc.Tokens {
		out[i] = bc.Text(i)
	}
	return out
}

// String renders the stream as space-separated token texts.
func (bc *Bytecode) String() string {
	return strings.Join(bc.Texts(), " ")
}
