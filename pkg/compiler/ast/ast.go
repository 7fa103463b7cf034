package ast

import "github.com/agenthands/hexa/pkg/compiler/lexer"

// Kind discriminates the three node shapes.
type Kind uint8

const (
	KindLeaf Kind = iota + 1
	KindUnary
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	}
	return "unknown"
}

// Node represents any node in the Abstract Syntax Tree. The set of
// implementations is closed: *Leaf, *Unary and *Binary.
type Node interface {
	Pos() lexer.Token
	Kind() Kind
	node()
}

// Program is the root node: top-level expressions with the separators
// between them. len(Seps) is len(Exprs)-1, or zero for an empty program.
type Program struct {
	Exprs []Node
	Seps  []lexer.Token
}

// Leaf wraps a single number, constant or tag token.
type Leaf struct {
	Token lexer.Token
}

func (l *Leaf) Pos() lexer.Token { return l.Token }
func (l *Leaf) Kind() Kind       { return KindLeaf }
func (l *Leaf) node()            {}

// Unary: OP OPERAND
type Unary struct {
	Op      lexer.Token
	Operand Node
}

func (u *Unary) Pos() lexer.Token { return u.Op }
func (u *Unary) Kind() Kind       { return KindUnary }
func (u *Unary) node()            {}

// Binary: LEFT OP RIGHT
type Binary struct {
	Left  Node
	Op    lexer.Token
	Right Node
}

func (b *Binary) Pos() lexer.Token { return b.Op }
func (b *Binary) Kind() Kind       { return KindBinary }
func (b *Binary) node()            {}

// Len returns the number of children of n in source order, counting the
// operator token: 1 for a leaf, 2 for a unary node, 3 for a binary node.
func Len(n Node) int {
	return int(n.Kind())
}

// Inspect visits n and its descendants in depth-first pre-order. If f
// returns false the children of that node are skipped. It uses an explicit
// stack so arbitrarily deep trees are safe.
func Inspect(n Node, f func(Node) bool) {
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil || !f(cur) {
			continue
		}
		switch c := cur.(type) {
		case *Unary:
			stack = append(stack, c.Operand)
		case *Binary:
			stack = append(stack, c.Right, c.Left)
		}
	}
}
